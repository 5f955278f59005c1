package handler

import (
	"errors"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateContact nhận form liên hệ; báo staff qua mail best effort
func CreateContact(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateContact").(model.CreateContactInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	inquiry := model.ContactInquiry{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Subject:     input.Subject,
		InquiryType: input.InquiryType,
		Message:     input.Message,
		PackageId:   input.PackageId,
		Status:      constants.INQUIRY_NEW,
	}
	if inquiry.InquiryType == "" {
		inquiry.InquiryType = "general"
	}

	if err := db.Create(&inquiry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lưu liên hệ", err)
	}

	utils.SendInquiryAlertEmail(inquiry.Subject, inquiry.Email, inquiry.Message)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Your message has been sent successfully! We will get back to you soon.",
	})
}

// GetInquiries danh sách liên hệ cho staff
func GetInquiries(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}
	db := database.DB

	condition := db.Model(&model.ContactInquiry{})
	if status := c.Query("status"); status != "" {
		if !helper.IsValidInquiryStatus(status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái không hợp lệ", errors.New("unknown inquiry status"))
		}
		condition = condition.Where("status = ?", status)
	}
	if inquiryType := c.Query("type"); inquiryType != "" {
		condition = condition.Where("inquiry_type = ?", inquiryType)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var inquiries []model.ContactInquiry
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Preload("Package").Order("created_at DESC").Find(&inquiries)

	response := &model.ResponseCustom{
		Rows:       inquiries,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// BulkInquiryStatus đổi trạng thái xử lý theo lô, một update duy nhất
func BulkInquiryStatus(c *fiber.Ctx) error {
	db := database.DB
	target, ok := c.Locals("targetStatus").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	arrayId, ok := c.Locals("bulkIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := db.Model(&model.ContactInquiry{}).
		Where("id IN ?", arrayId.IDs).
		Update("status", target)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"status":   target,
		"affected": result.RowsAffected,
	})
}

// RespondInquiry staff trả lời liên hệ; mặc định chuyển sang resolved
func RespondInquiry(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputRespondInquiry").(model.RespondInquiryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	inquiryId, ok := c.Locals("inquiryId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	status := input.Status
	if status == "" {
		status = constants.INQUIRY_RESOLVED
	}

	if err := db.Model(&model.ContactInquiry{}).
		Where("id = ?", inquiryId).
		Updates(map[string]interface{}{
			"admin_response": input.AdminResponse,
			"status":         status,
		}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     inquiryId,
		"status": status,
	})
}
