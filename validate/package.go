package validate

import (
	"errors"
	"fmt"
	"strconv"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreatePackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePackageInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, _, isStaff := helper.GetInfoAccountFromToken(c)
		if !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
		}

		// Kiểm tra danh mục tồn tại
		if input.CategoryId != nil {
			var category model.PackageCategory
			if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Danh mục không tồn tại", fmt.Errorf("categoryId not found"), "categoryId")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		// Kiểm tra gói tour đã tồn tại (theo tên)
		var existing model.Package
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gói tour đã tồn tại", fmt.Errorf("package name already exists"), "name")
		}

		// Sức chứa hợp lệ
		if input.MinPeople > 0 && input.MaxPeople > 0 && input.MinPeople > input.MaxPeople {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số người tối thiểu không được lớn hơn tối đa", fmt.Errorf("minPeople > maxPeople"), "minPeople")
		}

		c.Locals("inputCreatePackage", input)
		return c.Next()
	}
}

func EditPackage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditPackageInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, _, isStaff := helper.GetInfoAccountFromToken(c)
		if !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
		}

		var pkg model.Package
		if err := database.DB.First(&pkg, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Không tìm thấy gói tour",
				})
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// Đổi tên thì không được trùng với gói khác
		if input.Name != nil {
			var existing model.Package
			if err := database.DB.Where("name = ? AND id != ?", *input.Name, valueKey).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tên gói tour đã tồn tại", fmt.Errorf("package name already exists"), "name")
			}
		}

		if input.CategoryId != nil {
			var category model.PackageCategory
			if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Danh mục không tồn tại", fmt.Errorf("categoryId not found"), "categoryId")
			}
		}

		c.Locals("inputEditPackage", input)
		c.Locals("packageId", uint(valueKey))
		return c.Next()
	}
}

// CreateReview cho khách gửi đánh giá, chờ duyệt mới hiển thị
func CreateReview(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slugParam := c.Params(key)

		var input model.CreateReviewInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var pkg model.Package
		if err := database.DB.Where("slug = ? AND available = ?", slugParam, true).First(&pkg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("package not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputCreateReview", input)
		c.Locals("reviewPackage", pkg)
		return c.Next()
	}
}
