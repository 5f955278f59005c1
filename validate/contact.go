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

func CreateContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateContactInput
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

		// Tham chiếu gói tour là tùy chọn; sai id thì bỏ qua thay vì chặn liên hệ
		if input.PackageId != nil {
			var pkg model.Package
			if err := database.DB.First(&pkg, *input.PackageId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					input.PackageId = nil
				} else {
					return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
				}
			}
		}

		c.Locals("inputCreateContact", input)
		return c.Next()
	}
}

func BulkInquiryStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		target := c.Params(key)
		if !helper.IsValidInquiryStatus(target) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái không hợp lệ", errors.New("unknown inquiry status"))
		}

		var input model.ArrayId
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

		c.Locals("targetStatus", target)
		c.Locals("bulkIds", input)
		return c.Next()
	}
}

func RespondInquiry(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.RespondInquiryInput
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

		var inquiry model.ContactInquiry
		if err := database.DB.First(&inquiry, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("inquiry not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputRespondInquiry", input)
		c.Locals("inquiryId", uint(valueKey))
		return c.Next()
	}
}
