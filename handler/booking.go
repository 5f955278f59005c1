package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"time"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBooking lưu booking của khách và gửi mail xác nhận best effort.
// Mail lỗi không ảnh hưởng booking đã lưu.
func CreateBooking(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	pkg, ok := c.Locals("bookingPackage").(model.Package)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	travelDate, err := time.Parse("2006-01-02", input.TravelDate)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày đi không hợp lệ", err, "travelDate")
	}

	booking := model.Booking{
		PackageId:        pkg.ID,
		FullName:         input.FullName,
		Email:            input.Email,
		Phone:            input.Phone,
		AlternatePhone:   input.AlternatePhone,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		Pincode:          input.Pincode,
		NumberOfPeople:   input.NumberOfPeople,
		NumberOfAdults:   input.NumberOfAdults,
		NumberOfChildren: input.NumberOfChildren,
		TravelDate:       travelDate,
		SpecialRequests:  input.SpecialRequests,
		TotalPrice:       input.TotalPrice,
		AdvancePaid:      input.AdvancePaid,
		BookingStatus:    constants.BOOKING_PENDING,
		PaymentStatus:    constants.PAYMENT_PENDING,
	}
	if booking.NumberOfAdults == 0 {
		booking.NumberOfAdults = 1
	}

	if err := db.Create(&booking).Error; err != nil {
		// Va chạm mã booking: không ghi đè, trả conflict để client thử lại
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Mã booking bị trùng, vui lòng thử lại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo booking", err)
	}

	utils.SendBookingConfirmationEmail(booking.Email, utils.BookingConfirmationData{
		BookingCode: booking.BookingCode,
		FullName:    booking.FullName,
		PackageName: pkg.Name,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"bookingId":   booking.BookingCode,
		"redirectTo":  "/bookings/success/" + booking.BookingCode,
		"totalPrice":  booking.TotalPrice,
		"advancePaid": booking.AdvancePaid,
		"balance":     booking.BalanceAmount,
	})
}

// GetBookingByCode trang xác nhận booking, kèm QR voucher
func GetBookingByCode(c *fiber.Ctx) error {
	code := c.Params("bookingCode")
	db := database.DB

	var booking model.Booking
	if err := db.Preload("Package").Where("booking_id = ?", code).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(booking.BookingCode, 400); err != nil {
		log.Printf("Lỗi tạo QR cho booking %s: %v", booking.BookingCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":           booking,
		"paymentPercentage": helper.PaymentPercentage(booking.AdvancePaid, booking.TotalPrice),
		"qrCode":            qrBase64,
	})
}

// GetBookings danh sách cho staff, lọc theo trạng thái
func GetBookings(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}
	db := database.DB

	condition := db.Model(&model.Booking{})
	if status := c.Query("status"); status != "" {
		if !helper.IsValidBookingStatus(status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái không hợp lệ", errors.New("unknown booking status"))
		}
		condition = condition.Where("booking_status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		condition = condition.Where("payment_status = ?", paymentStatus)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Preload("Package").Order("created_at DESC").Find(&bookings)

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// BulkBookingStatus chuyển trạng thái theo lô bằng một update duy nhất.
// Chỉ những bản ghi đang ở trạng thái cho phép mới bị đổi; phần còn lại giữ nguyên.
func BulkBookingStatus(c *fiber.Ctx) error {
	db := database.DB
	target, ok := c.Locals("targetStatus").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	arrayId, ok := c.Locals("bulkIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	allowedFrom := helper.BookingStatusesAllowing(target)
	result := db.Model(&model.Booking{}).
		Where("id IN ? AND booking_status IN ?", arrayId.IDs, allowedFrom).
		Update("booking_status", target)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"status":   target,
		"affected": result.RowsAffected,
	})
}

// UpdatePaymentStatus trục thanh toán độc lập, staff đặt tay,
// không ràng buộc với booking_status
func UpdatePaymentStatus(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputPaymentStatus").(model.UpdatePaymentStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	booking, ok := c.Locals("bookingRecord").(model.Booking)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Model(&model.Booking{}).
		Where("id = ?", booking.ID).
		Update("payment_status", input.PaymentStatus).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingId":     booking.BookingCode,
		"paymentStatus": input.PaymentStatus,
	})
}
