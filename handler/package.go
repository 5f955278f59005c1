package handler

import (
	"errors"
	"fmt"
	"strings"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// thứ tự sắp xếp cho phép; khóa lạ rơi về mặc định nổi bật trước, mới trước
var packageSortKeys = map[string]string{
	"price":          "price ASC",
	"-price":         "price DESC",
	"duration_days":  "duration_days ASC",
	"-duration_days": "duration_days DESC",
	"-created_at":    "created_at DESC",
}

const defaultPackageOrder = "featured DESC, created_at DESC"

// GetPackages danh sách gói tour công khai: lọc, tìm kiếm, sắp xếp, phân trang 12/trang
func GetPackages(c *fiber.Ctx) error {
	filterInput := new(model.FilterPackageInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Package{}).Where("available = ?", true)

	if filterInput.Category != "" {
		condition = condition.Where(
			"category_id IN (?)",
			db.Model(&model.PackageCategory{}).Select("id").Where("slug = ?", filterInput.Category),
		)
	}

	if filterInput.Search != "" {
		q := "%" + strings.ToLower(strings.TrimSpace(filterInput.Search)) + "%"
		condition = condition.Where(
			"LOWER(name) LIKE ? OR LOWER(destination_city) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?",
			q, q, q, q,
		)
	}

	// Biên giá bao gồm cả hai đầu; giá trị không đọc được thì bỏ qua như không lọc
	if filterInput.MinPrice != "" {
		if minPrice, err := decimal.NewFromString(filterInput.MinPrice); err == nil {
			condition = condition.Where("price >= ?", minPrice)
		}
	}
	if filterInput.MaxPrice != "" {
		if maxPrice, err := decimal.NewFromString(filterInput.MaxPrice); err == nil {
			condition = condition.Where("price <= ?", maxPrice)
		}
	}

	order := defaultPackageOrder
	if byKey, ok := packageSortKeys[filterInput.Sort]; ok {
		order = byKey
	}

	var totalCount int64
	condition.Count(&totalCount)

	page, totalPages := utils.ClampPage(filterInput.Page, totalCount, constants.PACKAGE_PAGE_SIZE)

	var packages []model.Package
	condition.Preload("Category").
		Order(order).
		Limit(constants.PACKAGE_PAGE_SIZE).
		Offset((page - 1) * constants.PACKAGE_PAGE_SIZE).
		Find(&packages)

	var categories []model.PackageCategory
	db.Order("name ASC").Find(&categories)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       packages,
		"page":       page,
		"totalPages": totalPages,
		"totalCount": totalCount,
		"categories": categories,
	})
}

// GetPackageBySlug chi tiết gói tour; mỗi lần xem tăng views đúng 1,
// ghi ngay bằng update đơn cột (atomic ở tầng DB)
func GetPackageBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	db := database.DB

	var pkg model.Package
	if err := db.Preload("Category").
		Where("slug = ? AND available = ?", slugParam, true).
		First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("package not found"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&model.Package{}).
		Where("id = ?", pkg.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	pkg.Views++

	var gallery []model.PackageImage
	db.Where("package_id = ?", pkg.ID).Order("sort_order ASC, id ASC").Find(&gallery)

	var reviews []model.PackageReview
	db.Where("package_id = ? AND approved = ?", pkg.ID, true).Order("created_at DESC").Find(&reviews)

	// Gói liên quan cùng danh mục, tối đa 4, trừ chính nó
	var related []model.Package
	if pkg.CategoryId != nil {
		db.Where("category_id = ? AND available = ? AND id != ?", *pkg.CategoryId, true, pkg.ID).
			Order(defaultPackageOrder).
			Limit(4).
			Find(&related)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"package":            pkg,
		"discountPercentage": helper.DiscountPercentage(pkg.Price, pkg.OriginalPrice),
		"pricePerDay":        helper.PricePerDay(pkg.Price, pkg.DurationDays),
		"inclusions":         pkg.InclusionsList(),
		"exclusions":         pkg.ExclusionsList(),
		"highlights":         pkg.HighlightsList(),
		"galleryImages":      gallery,
		"reviews":            reviews,
		"relatedPackages":    related,
	})
}

// GetAllPackages danh sách cho trang quản trị, gồm cả gói đã ẩn
func GetAllPackages(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("bạn không có thẩm quyền"))
	}
	db := database.DB

	condition := db.Model(&model.Package{})
	var totalCount int64
	condition.Count(&totalCount)

	var packages []model.Package
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Preload("Category").Order("id DESC").Find(&packages)

	response := &model.ResponseCustom{
		Rows:       packages,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreatePackage(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreatePackage").(model.CreatePackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	pkg := model.Package{
		Name:               input.Name,
		CategoryId:         input.CategoryId,
		Description:        input.Description,
		ShortDescription:   input.ShortDescription,
		Price:              input.Price,
		OriginalPrice:      input.OriginalPrice,
		DurationDays:       input.DurationDays,
		DurationNights:     input.DurationNights,
		Location:           input.Location,
		DestinationCity:    input.DestinationCity,
		DestinationState:   input.DestinationState,
		DestinationCountry: input.DestinationCountry,
		Inclusions:         input.Inclusions,
		Exclusions:         input.Exclusions,
		Itinerary:          input.Itinerary,
		Highlights:         input.Highlights,
		Activities:         input.Activities,
		HotelType:          input.HotelType,
		MealPlan:           input.MealPlan,
		TransportMode:      input.TransportMode,
		Available:          true,
		Featured:           input.Featured,
		Popular:            input.Popular,
	}
	if input.Currency != "" {
		pkg.Currency = input.Currency
	}
	if input.Available != nil {
		pkg.Available = *input.Available
	}
	if input.MaxPeople > 0 {
		pkg.MaxPeople = input.MaxPeople
	}
	if input.MinPeople > 0 {
		pkg.MinPeople = input.MinPeople
	}
	pkg.Slug = helper.GenerateUniquePackageSlug(db, input.Name)

	if err := db.Create(&pkg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo gói tour", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, pkg)
}

func EditPackage(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputEditPackage").(model.EditPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	packageId, ok := c.Locals("packageId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var pkg model.Package
	if err := db.First(&pkg, packageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	// Slug giữ nguyên sau khi tạo, kể cả khi đổi tên
	keepSlug := pkg.Slug
	if err := copier.CopyWithOption(&pkg, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	pkg.Slug = keepSlug

	if pkg.MinPeople > pkg.MaxPeople {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số người tối thiểu không được lớn hơn tối đa", fmt.Errorf("minPeople > maxPeople"), "minPeople")
	}

	if err := db.Save(&pkg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật gói tour", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

// DeletePackages xóa theo lô; ảnh, đánh giá, booking xóa theo (cascade),
// inquiry giữ lại với tham chiếu null
func DeletePackages(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ContactInquiry{}).Where("package_id IN ?", ids).Update("package_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id IN ?", ids).Delete(&model.PackageImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id IN ?", ids).Delete(&model.PackageReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("package_id IN ?", ids).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Package{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xóa gói tour", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

// SetPackagesAvailability bật/tắt hiển thị theo lô
func SetPackagesAvailability(c *fiber.Ctx) error {
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	available := c.Params("value") == "true"

	arrayId, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Model(&model.Package{}).
		Where("id IN ?", arrayId.IDs).
		Update("available", available).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, arrayId.IDs)
}

// CreateReview đánh giá của khách, mặc định chờ duyệt
func CreateReview(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateReview").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	pkg, ok := c.Locals("reviewPackage").(model.Package)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	review := model.PackageReview{
		PackageId: pkg.ID,
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Review:    input.Review,
		Approved:  false,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lưu đánh giá", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

// ApproveReviews duyệt đánh giá theo lô
func ApproveReviews(c *fiber.Ctx) error {
	_, _, isStaff := helper.GetInfoAccountFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission invalid"))
	}
	arrayId := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.PackageReview{}).
		Where("id IN ?", arrayId.IDs).
		Update("approved", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, arrayId.IDs)
}
