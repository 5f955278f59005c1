package model

import "time"

// Testimonial là đánh giá độc lập, không gắn với booking nào;
// gói tour chỉ ghi bằng tên tự do.
type Testimonial struct {
	DTO
	CustomerName     string  `gorm:"type:varchar(200);not null" validate:"required" json:"customerName"`
	CustomerEmail    string  `gorm:"type:varchar(255)" validate:"omitempty,email" json:"customerEmail"`
	CustomerLocation string  `gorm:"type:varchar(100)" json:"customerLocation"`
	CustomerPhoto    *string `gorm:"type:varchar(255)" json:"customerPhoto"`

	PackageName string     `gorm:"type:varchar(200);not null" validate:"required" json:"packageName"`
	TripDate    *time.Time `gorm:"type:date" json:"tripDate"`

	Rating int    `gorm:"not null" validate:"required,min=1,max=5" json:"rating"`
	Title  string `gorm:"type:varchar(200);not null" validate:"required" json:"title"`
	Review string `gorm:"type:text;not null" validate:"required" json:"review"`

	Photo1 *string `gorm:"type:varchar(255)" json:"photo1"`
	Photo2 *string `gorm:"type:varchar(255)" json:"photo2"`
	Photo3 *string `gorm:"type:varchar(255)" json:"photo3"`

	Approved bool `gorm:"default:false" json:"approved"` // hiển thị công khai
	Featured bool `gorm:"default:false" json:"featured"` // chỉ lên trang chủ khi approved && featured
}

type CreateTestimonialInput struct {
	CustomerName     string  `json:"customerName" validate:"required,max=200"`
	CustomerEmail    string  `json:"customerEmail" validate:"omitempty,email"`
	CustomerLocation string  `json:"customerLocation" validate:"max=100"`
	PackageName      string  `json:"packageName" validate:"required,max=200"`
	TripDate         *string `json:"tripDate" validate:"omitempty,datetime=2006-01-02"`
	Rating           int     `json:"rating" validate:"required,min=1,max=5"`
	Title            string  `json:"title" validate:"required,max=200"`
	Review           string  `json:"review" validate:"required"`
}

type EditTestimonialInput struct {
	CustomerName     *string `json:"customerName" validate:"omitempty,max=200"`
	CustomerEmail    *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerLocation *string `json:"customerLocation" validate:"omitempty,max=100"`
	PackageName      *string `json:"packageName" validate:"omitempty,max=200"`
	Rating           *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Title            *string `json:"title" validate:"omitempty,max=200"`
	Review           *string `json:"review"`
	Approved         *bool   `json:"approved"`
	Featured         *bool   `json:"featured"`
}
