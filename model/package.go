package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Package struct {
	DTO
	Name       string           `gorm:"type:varchar(200);not null;index" validate:"required" json:"name"`
	Slug       string           `gorm:"uniqueIndex;size:220" json:"slug"` // bất biến sau khi tạo
	CategoryId *uint            `gorm:"index" json:"categoryId"`
	Category   *PackageCategory `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL" json:"category,omitempty"`

	Description      string `gorm:"type:text;not null" validate:"required" json:"description"`
	ShortDescription string `gorm:"type:varchar(300)" json:"shortDescription"`

	// Giá dùng numeric cố định, không dùng float
	Price         decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"originalPrice"`
	Currency      string              `gorm:"size:3;default:INR" json:"currency"`

	DurationDays   int    `gorm:"not null" validate:"gte=0" json:"durationDays"`
	DurationNights int    `gorm:"not null" validate:"gte=0" json:"durationNights"`
	Location       string `gorm:"type:varchar(200)" json:"location"`

	DestinationCity    string `gorm:"type:varchar(100);index" json:"destinationCity"`
	DestinationState   string `gorm:"type:varchar(100)" json:"destinationState"`
	DestinationCountry string `gorm:"type:varchar(100);default:India" json:"destinationCountry"`

	FeaturedImage *string `gorm:"type:varchar(255)" json:"featuredImage"`
	Image2        *string `gorm:"type:varchar(255)" json:"image2"`
	Image3        *string `gorm:"type:varchar(255)" json:"image3"`
	Image4        *string `gorm:"type:varchar(255)" json:"image4"`
	Image5        *string `gorm:"type:varchar(255)" json:"image5"`

	// Các khối text xuống dòng từng mục
	Inclusions string `gorm:"type:text" json:"inclusions"`
	Exclusions string `gorm:"type:text" json:"exclusions"`
	Itinerary  string `gorm:"type:text" json:"itinerary"`
	Highlights string `gorm:"type:text" json:"highlights"`
	Activities string `gorm:"type:text" json:"activities"`

	HotelType     string `gorm:"type:varchar(100)" json:"hotelType"`
	MealPlan      string `gorm:"type:varchar(100)" json:"mealPlan"`
	TransportMode string `gorm:"type:varchar(100)" json:"transportMode"`

	Available bool `gorm:"default:true" json:"available"`
	MaxPeople int  `gorm:"default:10" validate:"gte=1" json:"maxPeople"`
	MinPeople int  `gorm:"default:1" validate:"gte=1" json:"minPeople"`

	Featured bool `gorm:"default:false" json:"featured"`
	Popular  bool `gorm:"default:false" json:"popular"`
	Views    uint `gorm:"default:0" json:"views"` // chỉ tăng, không giảm

	GalleryImages []PackageImage  `gorm:"foreignKey:PackageId;constraint:OnDelete:CASCADE" json:"galleryImages,omitempty"`
	Reviews       []PackageReview `gorm:"foreignKey:PackageId;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

type PackageImage struct {
	DTO
	PackageId uint    `gorm:"not null;index" json:"packageId"`
	Image     string  `gorm:"type:varchar(255);not null" json:"image"`
	Caption   string  `gorm:"type:varchar(200)" json:"caption"`
	Order     int     `gorm:"column:sort_order;default:0;index" json:"order"`
	PublicID  *string `json:"-"`
}

// PackageReview chỉ ràng buộc rating >= 1, không chặn trần (giữ nguyên hành vi nguồn)
type PackageReview struct {
	DTO
	PackageId uint   `gorm:"not null;index" json:"packageId"`
	Name      string `gorm:"type:varchar(100);not null" validate:"required" json:"name"`
	Email     string `gorm:"type:varchar(255);not null" validate:"required,email" json:"email"`
	Rating    int    `gorm:"not null" validate:"gte=1" json:"rating"`
	Review    string `gorm:"type:text;not null" validate:"required" json:"review"`
	Approved  bool   `gorm:"default:false" json:"approved"`
}

// SplitLines tách khối text thành danh sách, bỏ dòng trống
func SplitLines(block string) []string {
	items := []string{}
	for _, line := range strings.Split(block, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func (p *Package) InclusionsList() []string { return SplitLines(p.Inclusions) }
func (p *Package) ExclusionsList() []string { return SplitLines(p.Exclusions) }
func (p *Package) HighlightsList() []string { return SplitLines(p.Highlights) }

type CreatePackageInput struct {
	Name             string              `json:"name" validate:"required,max=200"`
	CategoryId       *uint               `json:"categoryId"`
	Description      string              `json:"description" validate:"required"`
	ShortDescription string              `json:"shortDescription" validate:"max=300"`
	Price            decimal.Decimal     `json:"price" validate:"required"`
	OriginalPrice    decimal.NullDecimal `json:"originalPrice"`
	Currency         string              `json:"currency" validate:"omitempty,len=3"`

	DurationDays   int    `json:"durationDays" validate:"gte=0"`
	DurationNights int    `json:"durationNights" validate:"gte=0"`
	Location       string `json:"location" validate:"required,max=200"`

	DestinationCity    string `json:"destinationCity" validate:"required,max=100"`
	DestinationState   string `json:"destinationState" validate:"max=100"`
	DestinationCountry string `json:"destinationCountry" validate:"max=100"`

	Inclusions string `json:"inclusions"`
	Exclusions string `json:"exclusions"`
	Itinerary  string `json:"itinerary"`
	Highlights string `json:"highlights"`
	Activities string `json:"activities"`

	HotelType     string `json:"hotelType" validate:"max=100"`
	MealPlan      string `json:"mealPlan" validate:"max=100"`
	TransportMode string `json:"transportMode" validate:"max=100"`

	Available *bool `json:"available"`
	MaxPeople int   `json:"maxPeople" validate:"omitempty,gte=1"`
	MinPeople int   `json:"minPeople" validate:"omitempty,gte=1,ltefield=MaxPeople"`
	Featured  bool  `json:"featured"`
	Popular   bool  `json:"popular"`
}

type EditPackageInput struct {
	Name             *string              `json:"name" validate:"omitempty,max=200"`
	CategoryId       *uint                `json:"categoryId"`
	Description      *string              `json:"description"`
	ShortDescription *string              `json:"shortDescription" validate:"omitempty,max=300"`
	Price            *decimal.Decimal     `json:"price"`
	OriginalPrice    *decimal.NullDecimal `json:"originalPrice"`
	Currency         *string              `json:"currency" validate:"omitempty,len=3"`

	DurationDays   *int    `json:"durationDays" validate:"omitempty,gte=0"`
	DurationNights *int    `json:"durationNights" validate:"omitempty,gte=0"`
	Location       *string `json:"location" validate:"omitempty,max=200"`

	DestinationCity    *string `json:"destinationCity" validate:"omitempty,max=100"`
	DestinationState   *string `json:"destinationState" validate:"omitempty,max=100"`
	DestinationCountry *string `json:"destinationCountry" validate:"omitempty,max=100"`

	Inclusions *string `json:"inclusions"`
	Exclusions *string `json:"exclusions"`
	Itinerary  *string `json:"itinerary"`
	Highlights *string `json:"highlights"`
	Activities *string `json:"activities"`

	HotelType     *string `json:"hotelType" validate:"omitempty,max=100"`
	MealPlan      *string `json:"mealPlan" validate:"omitempty,max=100"`
	TransportMode *string `json:"transportMode" validate:"omitempty,max=100"`

	Available *bool `json:"available"`
	MaxPeople *int  `json:"maxPeople" validate:"omitempty,gte=1"`
	MinPeople *int  `json:"minPeople" validate:"omitempty,gte=1"`
	Featured  *bool `json:"featured"`
	Popular   *bool `json:"popular"`
}

type FilterPackageInput struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
}

type CreateReviewInput struct {
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"gte=1"`
	Review string `json:"review" validate:"required"`
}
