package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"travel_manager/config"
	"travel_manager/database"
	"travel_manager/model"
	"travel_manager/utils"
)

// Công cụ tải ảnh minh họa cho các gói tour còn thiếu ảnh.
// Tìm ảnh theo DestinationCity trên Pexels, lưu file vào MEDIA_ROOT
// rồi điền vào các slot ảnh còn trống theo thứ tự.
func main() {
	limit := flag.Int("limit", 0, "số gói tour tối đa cần xử lý, 0 là tất cả")
	imagesPerPackage := flag.Int("images-per-package", 3, "số ảnh tải cho mỗi gói")
	apiKey := flag.String("api-key", "", "Pexels API key, bỏ trống sẽ đọc PEXELS_API_KEY")
	flag.Parse()

	key := *apiKey
	if key == "" {
		key = config.Config("PEXELS_API_KEY")
	}
	if key == "" {
		log.Fatal("Thiếu Pexels API key: dùng -api-key hoặc biến PEXELS_API_KEY")
	}

	mediaRoot := config.ConfigDefault("MEDIA_ROOT", "media")
	if err := os.MkdirAll(mediaRoot, 0o755); err != nil {
		log.Fatalf("Không tạo được thư mục media: %v", err)
	}

	database.ConnectDB()
	db := database.DB

	var packages []model.Package
	query := db.Order("id ASC")
	if *limit > 0 {
		query = query.Limit(*limit)
	}
	if err := query.Find(&packages).Error; err != nil {
		log.Fatalf("Không đọc được danh sách gói tour: %v", err)
	}

	client := utils.NewPexelsClient(key)

	processed, skipped, failed := 0, 0, 0
	for _, pkg := range packages {
		// Đủ 3 ảnh đầu thì bỏ qua
		if pkg.FeaturedImage != nil && pkg.Image2 != nil && pkg.Image3 != nil {
			skipped++
			continue
		}

		searchTerm := pkg.DestinationCity
		if searchTerm == "" {
			searchTerm = pkg.Location
		}
		if searchTerm == "" {
			log.Printf("Bỏ qua %s: không có điểm đến để tìm ảnh", pkg.Slug)
			skipped++
			continue
		}

		photos, err := client.SearchPhotos(searchTerm, *imagesPerPackage)
		if err != nil {
			log.Printf("Lỗi tìm ảnh cho %s: %v", pkg.Slug, err)
			failed++
			continue
		}
		if len(photos) == 0 {
			log.Printf("Không có ảnh cho %s", pkg.Slug)
			skipped++
			continue
		}

		slots := []**string{}
		for _, slot := range []**string{&pkg.FeaturedImage, &pkg.Image2, &pkg.Image3, &pkg.Image4, &pkg.Image5} {
			if *slot == nil {
				slots = append(slots, slot)
			}
		}

		saved := 0
		for idx, photo := range photos {
			if saved >= len(slots) {
				break
			}
			data, err := client.DownloadImage(photo.URL)
			if err != nil {
				log.Printf("Lỗi tải ảnh %s cho %s: %v", photo.URL, pkg.Slug, err)
				continue
			}

			filename := fmt.Sprintf("%s_%d.jpg", pkg.Slug, idx+1)
			fullPath := filepath.Join(mediaRoot, filename)
			if err := os.WriteFile(fullPath, data, 0o644); err != nil {
				log.Printf("Lỗi ghi file %s: %v", fullPath, err)
				continue
			}

			relPath := filepath.Join("packages", filename)
			*slots[saved] = &relPath
			saved++
		}

		if saved == 0 {
			failed++
			continue
		}

		if err := db.Save(&pkg).Error; err != nil {
			log.Printf("Lỗi cập nhật gói %s: %v", pkg.Slug, err)
			failed++
			continue
		}

		log.Printf("Đã gắn %d ảnh cho %s", saved, pkg.Slug)
		processed++

		// Tránh đập API quá nhanh
		time.Sleep(1 * time.Second)
	}

	fmt.Printf("Hoàn tất: %d xử lý, %d bỏ qua, %d lỗi\n", processed, skipped, failed)
}
