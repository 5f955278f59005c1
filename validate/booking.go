package validate

import (
	"errors"
	"fmt"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateBooking xác thực form đặt tour; gói tour lấy theo slug trên route
func CreateBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slugParam := c.Params(key)

		var input model.CreateBookingInput
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

		if input.TotalPrice.LessThanOrEqual(decimal.Zero) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tổng tiền phải lớn hơn 0", fmt.Errorf("invalid totalPrice"), "totalPrice")
		}
		if input.AdvancePaid.IsNegative() {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tiền cọc không được âm", fmt.Errorf("invalid advancePaid"), "advancePaid")
		}
		if input.AdvancePaid.GreaterThan(input.TotalPrice) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tiền cọc không được vượt tổng tiền", fmt.Errorf("advancePaid > totalPrice"), "advancePaid")
		}

		var pkg model.Package
		if err := database.DB.Where("slug = ? AND available = ?", slugParam, true).First(&pkg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("package not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputCreateBooking", input)
		c.Locals("bookingPackage", pkg)
		return c.Next()
	}
}

// BulkBookingStatus xác thực bulk chuyển trạng thái: chỉ nhận trạng thái đích hợp lệ
func BulkBookingStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		target := c.Params(key)
		if !helper.IsValidBookingStatus(target) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái không hợp lệ", errors.New("unknown booking status"))
		}
		// pending không phải đích của chuyển trạng thái nào
		if len(helper.BookingStatusesAllowing(target)) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể chuyển về trạng thái này", errors.New("status has no inbound transition"))
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

func UpdatePaymentStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params(key)

		var input model.UpdatePaymentStatusInput
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

		var booking model.Booking
		if err := database.DB.Where("booking_id = ?", code).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("booking not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputPaymentStatus", input)
		c.Locals("bookingRecord", booking)
		return c.Next()
	}
}
