package handler

import (
	"net/http"
	"strings"
	"testing"

	"travel_manager/model"
	"travel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestimonialApp() *fiber.App {
	app := fiber.New()
	app.Get("/testimonials", GetTestimonials)
	app.Post("/testimonials", validate.CreateTestimonial(), CreateTestimonial)
	return app
}

func seedTestimonial(t *testing.T, db *gorm.DB, name string, approved, featured bool) model.Testimonial {
	t.Helper()
	testimonial := model.Testimonial{
		CustomerName: name,
		PackageName:  "Goa Tour",
		Rating:       5,
		Title:        "Great trip",
		Review:       "Everything was well arranged",
		Approved:     approved,
		Featured:     featured,
	}
	if err := db.Create(&testimonial).Error; err != nil {
		t.Fatalf("seed testimonial: %v", err)
	}
	return testimonial
}

func TestGetTestimonialsOnlyApproved(t *testing.T) {
	db := setupTestDB(t)
	app := newTestimonialApp()

	seedTestimonial(t, db, "Approved Featured", true, true)
	seedTestimonial(t, db, "Approved Plain", true, false)
	seedTestimonial(t, db, "Pending", false, false)
	seedTestimonial(t, db, "Pending Featured", false, true)

	req, _ := http.NewRequest(http.MethodGet, "/testimonials", nil)
	status, body := doRequest(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	data := dataOf(t, body)
	rows := data["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 approved only", len(rows))
	}
	// featured xếp trước
	if rows[0].(map[string]any)["customerName"] != "Approved Featured" {
		t.Errorf("first row = %v, want featured first", rows[0].(map[string]any)["customerName"])
	}
	if data["totalCount"].(float64) != 2 {
		t.Errorf("totalCount = %v, want 2", data["totalCount"])
	}
}

func TestCreateTestimonialStartsUnapproved(t *testing.T) {
	db := setupTestDB(t)
	app := newTestimonialApp()

	payload := `{
		"customerName": "New Customer",
		"packageName": "Goa Tour",
		"rating": 4,
		"title": "Nice tour",
		"review": "Would recommend"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/testimonials", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	status, _ := doRequest(t, app, req)
	if status != http.StatusCreated {
		t.Fatalf("status = %d", status)
	}

	var saved model.Testimonial
	db.Where("customer_name = ?", "New Customer").First(&saved)
	if saved.Approved || saved.Featured {
		t.Errorf("new testimonial approved=%v featured=%v, want both false", saved.Approved, saved.Featured)
	}
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	setupTestDB(t)
	app := newTestimonialApp()

	for _, rating := range []string{"0", "6"} {
		payload := `{"customerName": "X", "packageName": "P", "rating": ` + rating + `, "title": "t", "review": "r"}`
		req, _ := http.NewRequest(http.MethodPost, "/testimonials", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		if status, _ := doRequest(t, app, req); status != http.StatusBadRequest {
			t.Errorf("rating %s: status = %d, want 400", rating, status)
		}
	}
}
