package handler

import (
	"context"
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

// GetPageBySlug trang tĩnh, chỉ hiện khi active
func GetPageBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	db := database.DB

	var page model.Page
	if err := db.Where("slug = ? AND active = ?", slugParam, true).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("page not found"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func GetPages(c *fiber.Ctx) error {
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}
	db := database.DB
	var pages []model.Page
	if err := db.Order("title ASC").Find(&pages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pages)
}

func CreatePage(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreatePage").(model.CreatePageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	page := model.Page{
		Title:           input.Title,
		Content:         input.Content,
		MetaDescription: input.MetaDescription,
		Active:          true,
	}
	if input.Active != nil {
		page.Active = *input.Active
	}
	if input.Slug != "" {
		page.Slug = input.Slug
	} else {
		page.Slug = helper.GenerateUniquePageSlug(db, input.Title)
	}

	if err := db.Create(&page).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo trang", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, page)
}

func EditPage(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputEditPage").(model.EditPageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	pageId, ok := c.Locals("pageId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var page model.Page
	if err := db.First(&page, pageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	keepSlug := page.Slug
	if err := copier.CopyWithOption(&page, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	page.Slug = keepSlug

	if err := db.Save(&page).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật trang", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func DeletePages(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)

	if err := db.Where("id IN ?", arrayId.IDs).Delete(&model.Page{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xóa trang", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, arrayId.IDs)
}

// GetSiteSettings bản ghi cấu hình duy nhất của site
func GetSiteSettings(c *fiber.Ctx) error {
	db := database.DB
	var settings model.SiteSettings
	if err := db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Chưa cấu hình site", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

// CreateSiteSettings chặn tạo khi đã có bản ghi: settings là singleton
func CreateSiteSettings(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputSettings").(model.SiteSettings)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var count int64
	db.Model(&model.SiteSettings{}).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Cấu hình site đã tồn tại, chỉ được phép một bản ghi", errors.New("site settings already exist"))
	}

	input.ID = 0
	if err := db.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo cấu hình", err)
	}

	utils.CacheDelete(context.Background(), homeCacheKey)
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

// UpdateSiteSettings cập nhật bản ghi hiện có, xóa cache trang chủ
func UpdateSiteSettings(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputSettings").(model.SiteSettings)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var settings model.SiteSettings
	if err := db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Chưa cấu hình site", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	input.ID = settings.ID
	input.CreatedAt = settings.CreatedAt
	if err := db.Save(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật cấu hình", err)
	}

	utils.CacheDelete(context.Background(), homeCacheKey)
	return utils.SuccessResponse(c, fiber.StatusOK, input)
}
