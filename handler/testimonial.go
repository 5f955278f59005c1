package handler

import (
	"errors"
	"time"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetTestimonials danh sách công khai: chỉ những đánh giá đã duyệt
func GetTestimonials(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Testimonial{}).Where("approved = ?", true)

	var totalCount int64
	condition.Count(&totalCount)

	var testimonials []model.Testimonial
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Order("featured DESC, created_at DESC").Find(&testimonials)

	response := &model.ResponseCustom{
		Rows:       testimonials,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CreateTestimonial khách gửi đánh giá, chờ duyệt mới hiển thị
func CreateTestimonial(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateTestimonial").(model.CreateTestimonialInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	testimonial := model.Testimonial{
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		CustomerLocation: input.CustomerLocation,
		PackageName:      input.PackageName,
		Rating:           input.Rating,
		Title:            input.Title,
		Review:           input.Review,
		Approved:         false,
		Featured:         false,
	}
	if input.TripDate != nil {
		if tripDate, err := time.Parse("2006-01-02", *input.TripDate); err == nil {
			testimonial.TripDate = &tripDate
		}
	}

	if err := db.Create(&testimonial).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lưu đánh giá", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, testimonial)
}

// GetAllTestimonials danh sách cho staff, gồm cả chưa duyệt
func GetAllTestimonials(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}
	db := database.DB

	condition := db.Model(&model.Testimonial{})
	var totalCount int64
	condition.Count(&totalCount)

	var testimonials []model.Testimonial
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Order("created_at DESC").Find(&testimonials)

	response := &model.ResponseCustom{
		Rows:       testimonials,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// EditTestimonial staff sửa nội dung, duyệt hoặc gắn nổi bật
func EditTestimonial(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputEditTestimonial").(model.EditTestimonialInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	testimonialId, ok := c.Locals("testimonialId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var testimonial model.Testimonial
	if err := db.First(&testimonial, testimonialId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&testimonial, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&testimonial).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật đánh giá", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, testimonial)
}

func DeleteTestimonials(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)

	if err := db.Where("id IN ?", arrayId.IDs).Delete(&model.Testimonial{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xóa đánh giá", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, arrayId.IDs)
}
