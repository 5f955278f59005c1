package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"travel_manager/constants"
	"travel_manager/middleware"
	"travel_manager/model"
	"travel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func newBookingApp() *fiber.App {
	app := fiber.New()
	app.Post("/bookings/:packageSlug", validate.CreateBooking("packageSlug"), CreateBooking)
	app.Get("/bookings/success/:bookingCode", GetBookingByCode)
	app.Patch("/admin/bookings/status/:status", middleware.Protected(), validate.BulkBookingStatus("status"), BulkBookingStatus)
	app.Patch("/admin/bookings/:bookingCode/payment", middleware.Protected(), validate.UpdatePaymentStatus("bookingCode"), UpdatePaymentStatus)
	return app
}

const bookingBody = `{
	"fullName": "Test Customer",
	"email": "customer@example.com",
	"phone": "9876543210",
	"address": "12 Beach Road",
	"city": "Panaji",
	"state": "Goa",
	"pincode": "403001",
	"numberOfPeople": 2,
	"travelDate": "2026-10-15",
	"totalPrice": "10000",
	"advancePaid": "2500"
}`

func postBooking(t *testing.T, app *fiber.App, slug, body string) (int, map[string]any) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, "/bookings/"+slug, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(t, app, req)
}

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	seedPackage(t, db, model.Package{Name: "Goa", Slug: "goa", Available: true})

	status, body := postBooking(t, app, "goa", bookingBody)
	if status != http.StatusCreated {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	data := dataOf(t, body)
	code, _ := data["bookingId"].(string)
	if !regexp.MustCompile(`^BKG\d{14}-[A-Z0-9]{4}$`).MatchString(code) {
		t.Errorf("bookingId = %q, want BKG<timestamp>-<4 chars>", code)
	}
	if data["redirectTo"] != "/bookings/success/"+code {
		t.Errorf("redirectTo = %v", data["redirectTo"])
	}
	if data["balance"].(string) != "7500" {
		t.Errorf("balance = %v, want 7500", data["balance"])
	}

	var saved model.Booking
	db.Where("booking_id = ?", code).First(&saved)
	if saved.BookingStatus != constants.BOOKING_PENDING {
		t.Errorf("bookingStatus = %q, want pending", saved.BookingStatus)
	}
	if saved.PaymentStatus != constants.PAYMENT_PENDING {
		t.Errorf("paymentStatus = %q, want pending", saved.PaymentStatus)
	}
	if !saved.BalanceAmount.Equal(decimal.NewFromInt(7500)) {
		t.Errorf("balanceAmount = %s, want 7500", saved.BalanceAmount)
	}
	if saved.NumberOfAdults != 1 {
		t.Errorf("numberOfAdults = %d, want default 1", saved.NumberOfAdults)
	}
}

func TestCreateBookingDistinctCodes(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	seedPackage(t, db, model.Package{Name: "Goa", Slug: "goa", Available: true})

	codes := map[string]bool{}
	for i := 0; i < 5; i++ {
		status, body := postBooking(t, app, "goa", bookingBody)
		if status != http.StatusCreated {
			t.Fatalf("booking %d: status = %d", i, status)
		}
		code := dataOf(t, body)["bookingId"].(string)
		if codes[code] {
			t.Fatalf("duplicate booking code %q", code)
		}
		codes[code] = true
	}
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	seedPackage(t, db, model.Package{Name: "Goa", Slug: "goa", Available: true})
	seedPackage(t, db, model.Package{Name: "Hidden", Slug: "hidden", Available: false})

	// tiền cọc vượt tổng tiền
	overpaid := strings.Replace(bookingBody, `"advancePaid": "2500"`, `"advancePaid": "20000"`, 1)
	if status, _ := postBooking(t, app, "goa", overpaid); status != http.StatusBadRequest {
		t.Errorf("advance > total: status = %d, want 400", status)
	}

	// tổng tiền bằng 0
	zeroTotal := strings.Replace(bookingBody, `"totalPrice": "10000"`, `"totalPrice": "0"`, 1)
	if status, _ := postBooking(t, app, "goa", zeroTotal); status != http.StatusBadRequest {
		t.Errorf("zero total: status = %d, want 400", status)
	}

	// gói đã ẩn không đặt được
	if status, _ := postBooking(t, app, "hidden", bookingBody); status != http.StatusNotFound {
		t.Errorf("unavailable package: status = %d, want 404", status)
	}
}

func TestGetBookingByCode(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	pkg := seedPackage(t, db, model.Package{Name: "Goa", Slug: "goa", Available: true})
	booking := model.Booking{
		PackageId:   pkg.ID,
		FullName:    "Test Customer",
		Email:       "customer@example.com",
		Phone:       "9876543210",
		Address:     "12 Beach Road",
		City:        "Panaji",
		State:       "Goa",
		Pincode:     "403001",
		TotalPrice:  decimal.NewFromInt(10000),
		AdvancePaid: decimal.NewFromInt(2500),
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/bookings/success/"+booking.BookingCode, nil)
	status, body := doRequest(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	data := dataOf(t, body)
	if data["paymentPercentage"].(string) != "25" {
		t.Errorf("paymentPercentage = %v, want 25", data["paymentPercentage"])
	}
	if qr, _ := data["qrCode"].(string); !strings.HasPrefix(qr, "data:image/png;base64,") {
		t.Errorf("qrCode missing data URI prefix: %.40s", qr)
	}

	req, _ = http.NewRequest(http.MethodGet, "/bookings/success/BKG00000000000000-XXXX", nil)
	if status, _ := doRequest(t, app, req); status != http.StatusNotFound {
		t.Errorf("unknown code: status = %d, want 404", status)
	}
}

func TestBulkBookingStatus(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	pkg := seedPackage(t, db, model.Package{Name: "Goa", Slug: "goa", Available: true})
	mkBooking := func(status string) model.Booking {
		b := model.Booking{
			PackageId:     pkg.ID,
			FullName:      "Test",
			Email:         "t@example.com",
			Phone:         "9876543210",
			Address:       "x",
			City:          "x",
			State:         "x",
			Pincode:       "1",
			TotalPrice:    decimal.NewFromInt(1000),
			BookingStatus: status,
		}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("create booking: %v", err)
		}
		return b
	}

	pending := mkBooking(constants.BOOKING_PENDING)
	completed := mkBooking(constants.BOOKING_COMPLETED)
	cancelled := mkBooking(constants.BOOKING_CANCELLED)

	ids := fmt.Sprintf(`{"ids": [%d, %d, %d]}`, pending.ID, completed.ID, cancelled.ID)
	req, _ := http.NewRequest(http.MethodPatch, "/admin/bookings/status/confirmed", strings.NewReader(ids))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken(t, constants.ROLE_STAFF))

	status, body := doRequest(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	// chỉ bản ghi pending bị đổi, completed/cancelled giữ nguyên
	if affected := dataOf(t, body)["affected"].(float64); affected != 1 {
		t.Errorf("affected = %v, want 1", affected)
	}

	var reloaded model.Booking
	db.First(&reloaded, pending.ID)
	if reloaded.BookingStatus != constants.BOOKING_CONFIRMED {
		t.Errorf("pending booking = %q, want confirmed", reloaded.BookingStatus)
	}
	db.First(&reloaded, completed.ID)
	if reloaded.BookingStatus != constants.BOOKING_COMPLETED {
		t.Errorf("completed booking changed to %q", reloaded.BookingStatus)
	}
	db.First(&reloaded, cancelled.ID)
	if reloaded.BookingStatus != constants.BOOKING_CANCELLED {
		t.Errorf("cancelled booking changed to %q", reloaded.BookingStatus)
	}
}

func TestBulkBookingStatusRejectsPendingTarget(t *testing.T) {
	setupTestDB(t)
	app := newBookingApp()

	req, _ := http.NewRequest(http.MethodPatch, "/admin/bookings/status/pending", strings.NewReader(`{"ids": [1]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken(t, constants.ROLE_STAFF))

	if status, _ := doRequest(t, app, req); status != http.StatusBadRequest {
		t.Errorf("pending target: status = %d, want 400", status)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	pkg := seedPackage(t, db, model.Package{Name: "Goa", Slug: "goa", Available: true})
	booking := model.Booking{
		PackageId:  pkg.ID,
		FullName:   "Test",
		Email:      "t@example.com",
		Phone:      "9876543210",
		Address:    "x",
		City:       "x",
		State:      "x",
		Pincode:    "1",
		TotalPrice: decimal.NewFromInt(1000),
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPatch, "/admin/bookings/"+booking.BookingCode+"/payment",
		strings.NewReader(`{"paymentStatus": "paid"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken(t, constants.ROLE_STAFF))

	status, _ := doRequest(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var reloaded model.Booking
	db.First(&reloaded, booking.ID)
	if reloaded.PaymentStatus != constants.PAYMENT_PAID {
		t.Errorf("paymentStatus = %q, want paid", reloaded.PaymentStatus)
	}
	// trục thanh toán không đụng trạng thái booking
	if reloaded.BookingStatus != constants.BOOKING_PENDING {
		t.Errorf("bookingStatus = %q, want untouched pending", reloaded.BookingStatus)
	}
}
