package handler

import (
	"net/http"
	"strings"
	"testing"

	"travel_manager/constants"
	"travel_manager/middleware"
	"travel_manager/model"
	"travel_manager/validate"

	"github.com/gofiber/fiber/v2"
)

func newPageApp() *fiber.App {
	app := fiber.New()
	app.Get("/pages/:slug", GetPageBySlug)
	app.Post("/admin/settings", middleware.Protected(), validate.SaveSettings(), CreateSiteSettings)
	app.Put("/admin/settings", middleware.Protected(), validate.SaveSettings(), UpdateSiteSettings)
	return app
}

func TestGetPageBySlug(t *testing.T) {
	db := setupTestDB(t)
	app := newPageApp()

	db.Create(&model.Page{Title: "About Us", Slug: "about-us", Content: "We organize tours", Active: true})
	db.Create(&model.Page{Title: "Draft", Slug: "draft", Content: "wip", Active: false})

	req, _ := http.NewRequest(http.MethodGet, "/pages/about-us", nil)
	status, body := doRequest(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if dataOf(t, body)["title"] != "About Us" {
		t.Errorf("title = %v", body["data"])
	}

	// trang tắt active trả 404 như không tồn tại
	req, _ = http.NewRequest(http.MethodGet, "/pages/draft", nil)
	if status, _ := doRequest(t, app, req); status != http.StatusNotFound {
		t.Errorf("inactive page: status = %d, want 404", status)
	}

	req, _ = http.NewRequest(http.MethodGet, "/pages/missing", nil)
	if status, _ := doRequest(t, app, req); status != http.StatusNotFound {
		t.Errorf("missing page: status = %d, want 404", status)
	}
}

const settingsBody = `{
	"siteName": "Kerala Travels",
	"contactEmail": "info@example.com",
	"contactPhone": "9876543210"
}`

func TestSiteSettingsSingleton(t *testing.T) {
	db := setupTestDB(t)
	app := newPageApp()

	adminToken := staffToken(t, constants.ROLE_ADMIN)
	post := func(body string) (int, map[string]any) {
		req, _ := http.NewRequest(http.MethodPost, "/admin/settings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		return doRequest(t, app, req)
	}

	status, _ := post(settingsBody)
	if status != http.StatusCreated {
		t.Fatalf("first create: status = %d", status)
	}

	// bản ghi thứ hai bị chặn
	status, _ = post(settingsBody)
	if status != http.StatusConflict {
		t.Errorf("second create: status = %d, want 409", status)
	}

	var count int64
	db.Model(&model.SiteSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}

	// cập nhật thì được, vẫn giữ một bản ghi
	updated := strings.Replace(settingsBody, "Kerala Travels", "Kerala Travels Updated", 1)
	req, _ := http.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(updated))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	if status, _ := doRequest(t, app, req); status != http.StatusOK {
		t.Errorf("update: status = %d", status)
	}

	var settings model.SiteSettings
	db.First(&settings)
	if settings.SiteName != "Kerala Travels Updated" {
		t.Errorf("siteName = %q", settings.SiteName)
	}
	db.Model(&model.SiteSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("settings rows after update = %d, want 1", count)
	}
}

func TestSiteSettingsRequiresAdmin(t *testing.T) {
	setupTestDB(t)
	app := newPageApp()

	req, _ := http.NewRequest(http.MethodPost, "/admin/settings", strings.NewReader(settingsBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken(t, constants.ROLE_STAFF))

	if status, _ := doRequest(t, app, req); status != http.StatusForbidden {
		t.Errorf("staff creating settings: status = %d, want 403", status)
	}
}
