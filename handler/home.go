package handler

import (
	"context"
	"time"

	"travel_manager/database"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const homeCacheKey = "home:payload"
const homeCacheTTL = 5 * time.Minute

type homePayload struct {
	FeaturedPackages []model.Package         `json:"featuredPackages"`
	PopularPackages  []model.Package         `json:"popularPackages"`
	Testimonials     []model.Testimonial     `json:"testimonials"`
	Categories       []model.PackageCategory `json:"categories"`
	Sliders          []model.Slider          `json:"sliders"`
	SiteSettings     *model.SiteSettings     `json:"siteSettings"`
}

// Home gom dữ liệu trang chủ, cache redis TTL ngắn
func Home(c *fiber.Ctx) error {
	ctx := context.Background()

	var payload homePayload
	if utils.CacheGetJSON(ctx, homeCacheKey, &payload) {
		return utils.SuccessResponse(c, fiber.StatusOK, payload)
	}

	db := database.DB

	db.Where("featured = ? AND available = ?", true, true).
		Order("created_at DESC").Limit(8).Find(&payload.FeaturedPackages)

	db.Where("popular = ? AND available = ?", true, true).
		Order("created_at DESC").Limit(8).Find(&payload.PopularPackages)

	// Trang chủ chỉ hiện testimonial vừa duyệt vừa nổi bật
	db.Where("approved = ? AND featured = ?", true, true).
		Order("created_at DESC").Limit(6).Find(&payload.Testimonials)

	db.Order("name ASC").Limit(6).Find(&payload.Categories)

	db.Where("active = ?", true).Order("sort_order ASC").Find(&payload.Sliders)

	var settings model.SiteSettings
	if err := db.First(&settings).Error; err == nil {
		payload.SiteSettings = &settings
	}

	utils.CacheSetJSON(ctx, homeCacheKey, payload, homeCacheTTL)

	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}
