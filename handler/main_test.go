package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	helper.JwtSecret = []byte("test-secret")
	os.Exit(m.Run())
}

// setupTestDB mở sqlite in-memory riêng cho từng test
// và trỏ database.DB vào đó
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	database.Migrate(db)
	database.DB = db
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) model.PackageCategory {
	t.Helper()
	category := model.PackageCategory{Name: name, Slug: slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedPackage(t *testing.T, db *gorm.DB, pkg model.Package) model.Package {
	t.Helper()
	if pkg.Description == "" {
		pkg.Description = "A tour package"
	}
	if pkg.DurationDays == 0 {
		pkg.DurationDays = 3
	}
	if pkg.Price.IsZero() {
		pkg.Price = decimal.NewFromInt(10000)
	}
	if err := db.Create(&pkg).Error; err != nil {
		t.Fatalf("seed package %s: %v", pkg.Name, err)
	}
	return pkg
}

func staffToken(t *testing.T, role string) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: 1,
		Username:  "tester",
		Role:      role,
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doRequest chạy request qua fiber test harness, decode envelope response
func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	body := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, body
}

func dataOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	return data
}
