package handler

import (
	"errors"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetCategories(c *fiber.Ctx) error {
	db := database.DB
	var categories []model.PackageCategory
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	category := model.PackageCategory{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}
	// Slug tự sinh từ tên khi không truyền
	if input.Slug != "" {
		category.Slug = input.Slug
	} else {
		category.Slug = helper.GenerateUniqueCategorySlug(db, input.Name)
	}

	if err := db.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo danh mục", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputEditCategory").(model.EditCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	categoryId, ok := c.Locals("categoryId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.PackageCategory
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	keepSlug := category.Slug
	if err := copier.CopyWithOption(&category, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	category.Slug = keepSlug

	if err := db.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật danh mục", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// DeleteCategories xóa danh mục; gói tour thuộc danh mục chuyển tham chiếu về null
func DeleteCategories(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Package{}).Where("category_id IN ?", ids).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.PackageCategory{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xóa danh mục", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
