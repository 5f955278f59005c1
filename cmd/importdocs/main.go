package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"

	"github.com/fumiama/go-docx"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Công cụ nhập gói tour từ thư mục tài liệu .docx.
// Tên file cho biết điểm đến và số ngày/đêm, nội dung file
// cho mô tả, inclusions/exclusions và lịch trình.
func main() {
	dir := flag.String("dir", "docs", "thư mục chứa file .docx")
	flag.Parse()

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Không đọc được thư mục %s: %v", *dir, err)
	}

	database.ConnectDB()
	db := database.DB

	imported, skipped := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".docx") {
			continue
		}

		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		parsed := helper.ParsePackageFilename(baseName)
		if parsed.Destination == "" {
			log.Printf("Bỏ qua %s: không đọc được điểm đến từ tên file", entry.Name())
			skipped++
			continue
		}

		var count int64
		db.Model(&model.Package{}).Where("name = ?", parsed.Name).Count(&count)
		if count > 0 {
			log.Printf("Bỏ qua %s: gói %q đã tồn tại", entry.Name(), parsed.Name)
			skipped++
			continue
		}

		content, err := readDocText(filepath.Join(*dir, entry.Name()))
		if err != nil {
			log.Printf("Lỗi đọc %s: %v", entry.Name(), err)
			skipped++
			continue
		}
		doc := helper.ExtractDocContent(content)

		if doc.Description == "" {
			doc.Description = fmt.Sprintf("Explore %s with our %d days %d nights tour package.",
				parsed.Destination, parsed.DurationDays, parsed.DurationNights)
		}
		if doc.Inclusions == "" {
			doc.Inclusions = "Accommodation\nDaily Breakfast\nAll transfers\nSightseeing as per itinerary"
		}
		if doc.Exclusions == "" {
			doc.Exclusions = "Airfare\nLunch and Dinner\nPersonal expenses\nAnything not mentioned in inclusions"
		}
		if doc.Itinerary == "" {
			doc.Itinerary = helper.DefaultItinerary(parsed.Destination, parsed.DurationDays)
		}

		categoryName := helper.CategoryForDestination(parsed.Destination)
		var category model.PackageCategory
		db.Where(model.PackageCategory{Name: categoryName}).
			Attrs(model.PackageCategory{Slug: slug.Make(categoryName)}).
			FirstOrCreate(&category)

		pkg := model.Package{
			Name:               parsed.Name,
			Slug:               helper.GenerateUniquePackageSlug(db, parsed.Name),
			CategoryId:         &category.ID,
			Description:        doc.Description,
			ShortDescription:   fmt.Sprintf("%d Days %d Nights %s Tour", parsed.DurationDays, parsed.DurationNights, parsed.Destination),
			Price:              decimal.NewFromInt(10000),
			DurationDays:       parsed.DurationDays,
			DurationNights:     parsed.DurationNights,
			Location:           parsed.Destination,
			DestinationCity:    parsed.Destination,
			DestinationState:   helper.StateForDestination(parsed.Destination),
			DestinationCountry: "India",
			Inclusions:         doc.Inclusions,
			Exclusions:         doc.Exclusions,
			Itinerary:          doc.Itinerary,
			HotelType:          "3-Star",
			MealPlan:           "Breakfast",
			TransportMode:      "AC Vehicle",
			Available:          true,
			MinPeople:          1,
			MaxPeople:          10,
			Featured:           imported < 8,
			Popular:            imported < 6,
		}

		if err := db.Create(&pkg).Error; err != nil {
			log.Printf("Lỗi lưu gói %q: %v", parsed.Name, err)
			skipped++
			continue
		}

		log.Printf("Đã nhập %q (%s)", pkg.Name, pkg.Slug)
		imported++
	}

	fmt.Printf("Hoàn tất: %d nhập mới, %d bỏ qua\n", imported, skipped)
}

// readDocText ghép text các đoạn văn trong file docx
func readDocText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	doc, err := docx.Parse(file, info.Size())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			text := strings.TrimSpace(block.String())
			if text != "" {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}
