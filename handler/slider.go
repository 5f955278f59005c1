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
)

// GetSliders danh sách cho staff, gồm cả slider đã tắt
func GetSliders(c *fiber.Ctx) error {
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}
	db := database.DB
	var sliders []model.Slider
	if err := db.Order("sort_order ASC").Find(&sliders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sliders)
}

func CreateSlider(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateSlider").(model.CreateSliderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	slider := model.Slider{
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		Image:      input.Image,
		ButtonText: input.ButtonText,
		ButtonLink: input.ButtonLink,
		Order:      input.Order,
		Active:     true,
	}
	if input.Active != nil {
		slider.Active = *input.Active
	}

	if err := db.Create(&slider).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo slider", err)
	}

	utils.CacheDelete(context.Background(), homeCacheKey)
	return utils.SuccessResponse(c, fiber.StatusCreated, slider)
}

func EditSlider(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputEditSlider").(model.EditSliderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	sliderId, ok := c.Locals("sliderId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var slider model.Slider
	if err := db.First(&slider, sliderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&slider, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	// copier bỏ qua giá trị zero nên Order=0 và Active=false phải gán tay
	if input.Order != nil {
		slider.Order = *input.Order
	}
	if input.Active != nil {
		slider.Active = *input.Active
	}

	if err := db.Save(&slider).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật slider", err)
	}

	utils.CacheDelete(context.Background(), homeCacheKey)
	return utils.SuccessResponse(c, fiber.StatusOK, slider)
}

func DeleteSliders(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)

	if err := db.Where("id IN ?", arrayId.IDs).Delete(&model.Slider{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xóa slider", err)
	}

	utils.CacheDelete(context.Background(), homeCacheKey)
	return utils.SuccessResponse(c, fiber.StatusOK, arrayId.IDs)
}
