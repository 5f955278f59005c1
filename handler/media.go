package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature ký tham số upload trực tiếp từ client lên Cloudinary
func GenerateSignature(c *fiber.Ctx) error {
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // Parse but don't sign
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// stringToSign ghép tay, giá trị raw không URL encode
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadPackageGallery nhận nhiều ảnh gallery cho một package,
// đẩy lên Cloudinary rồi ghi PackageImage theo thứ tự gửi lên
func UploadPackageGallery(c *fiber.Ctx) error {
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}

	packageIdParam, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var pkg model.Package
	if err := db.First(&pkg, packageIdParam).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không đọc được form upload", err)
	}
	files := form.File["images"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chưa chọn ảnh nào", errors.New("no files"))
	}

	// Xóa ảnh cũ nếu client gửi removeImageIds
	cld := helper.InitCloudinary()
	for _, raw := range form.Value["removeImageIds"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		var image model.PackageImage
		if err := db.Where("id = ? AND package_id = ?", id, pkg.ID).First(&image).Error; err == nil {
			if image.PublicID != nil {
				cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
					PublicID: *image.PublicID,
				})
			}
			db.Delete(&image)
		}
	}

	var maxOrder int
	db.Model(&model.PackageImage{}).
		Where("package_id = ?", pkg.ID).
		Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder)

	var created []model.PackageImage
	var failedFiles []fiber.Map

	for idx, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    "Chỉ hỗ trợ JPG, PNG, WEBP",
			})
			continue
		}

		reader, err := file.Open()
		if err != nil {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    err.Error(),
			})
			continue
		}

		result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
			Folder:       "packages/gallery",
			PublicID:     fmt.Sprintf("package_%d_gallery_%d_%d", pkg.ID, time.Now().Unix(), idx),
			ResourceType: "image",
		})
		reader.Close()
		if err != nil {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    err.Error(),
			})
			continue
		}

		image := model.PackageImage{
			PackageId: pkg.ID,
			Image:     result.SecureURL,
			Caption:   file.Filename,
			Order:     maxOrder + idx + 1,
			PublicID:  &result.PublicID,
		}
		if err := db.Create(&image).Error; err != nil {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    err.Error(),
			})
			continue
		}
		created = append(created, image)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"uploaded": created,
		"failed":   failedFiles,
	})
}
