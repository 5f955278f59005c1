package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Booking struct {
	DTO
	PackageId uint     `gorm:"not null;index" json:"packageId"`
	Package   *Package `gorm:"foreignKey:PackageId;constraint:OnDelete:CASCADE" json:"package,omitempty"`

	// Mã công khai, sinh một lần khi tạo, không sinh lại
	BookingCode string `gorm:"column:booking_id;uniqueIndex;size:30" json:"bookingId"`

	FullName       string `gorm:"type:varchar(200);not null" json:"fullName"`
	Email          string `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string `gorm:"type:varchar(15);not null" json:"phone"`
	AlternatePhone string `gorm:"type:varchar(15)" json:"alternatePhone"`
	Address        string `gorm:"type:text;not null" json:"address"`
	City           string `gorm:"type:varchar(100);not null" json:"city"`
	State          string `gorm:"type:varchar(100);not null" json:"state"`
	Pincode        string `gorm:"type:varchar(10);not null" json:"pincode"`

	NumberOfPeople   int       `gorm:"not null" json:"numberOfPeople"`
	NumberOfAdults   int       `gorm:"default:1" json:"numberOfAdults"`
	NumberOfChildren int       `gorm:"default:0" json:"numberOfChildren"`
	TravelDate       time.Time `gorm:"type:date;not null" json:"travelDate"`
	SpecialRequests  string    `gorm:"type:text" json:"specialRequests"`

	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalPrice"`
	AdvancePaid   decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"advancePaid"`
	BalanceAmount decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"balanceAmount"`

	BookingStatus string `gorm:"size:20;default:pending;index" json:"bookingStatus"`
	PaymentStatus string `gorm:"size:20;default:pending" json:"paymentStatus"`

	AdminNotes string `gorm:"type:text" json:"adminNotes"`
}

// BeforeCreate sinh mã booking: BKG + timestamp giây + 4 ký tự ngẫu nhiên.
// Vòng kiểm tra trùng + uniqueIndex ở tầng DB chặn va chạm khi tạo đồng thời.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingCode != "" {
		return nil
	}
	base := "BKG" + time.Now().Format("20060102150405")
	for {
		code := fmt.Sprintf("%s-%s", base, strings.ToUpper(uuid.New().String()[:4]))
		var count int64
		if err := tx.Model(&Booking{}).Where("booking_id = ?", code).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			b.BookingCode = code
			return nil
		}
	}
}

// BeforeSave tính lại số còn phải trả mỗi lần lưu
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	b.BalanceAmount = b.TotalPrice.Sub(b.AdvancePaid)
	return nil
}

type CreateBookingInput struct {
	FullName       string `json:"fullName" form:"full_name" validate:"required,max=200"`
	Email          string `json:"email" form:"email" validate:"required,email"`
	Phone          string `json:"phone" form:"phone" validate:"required,max=15"`
	AlternatePhone string `json:"alternatePhone" form:"alternate_phone" validate:"max=15"`
	Address        string `json:"address" form:"address" validate:"required"`
	City           string `json:"city" form:"city" validate:"required,max=100"`
	State          string `json:"state" form:"state" validate:"required,max=100"`
	Pincode        string `json:"pincode" form:"pincode" validate:"required,max=10"`

	NumberOfPeople   int    `json:"numberOfPeople" form:"number_of_people" validate:"required,gte=1"`
	NumberOfAdults   int    `json:"numberOfAdults" form:"number_of_adults" validate:"omitempty,gte=0"`
	NumberOfChildren int    `json:"numberOfChildren" form:"number_of_children" validate:"omitempty,gte=0"`
	TravelDate       string `json:"travelDate" form:"travel_date" validate:"required,datetime=2006-01-02"`
	SpecialRequests  string `json:"specialRequests" form:"special_requests"`

	TotalPrice  decimal.Decimal `json:"totalPrice" form:"total_price" validate:"required"`
	AdvancePaid decimal.Decimal `json:"advancePaid" form:"advance_paid"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid partial refunded"`
}

type ContactInquiry struct {
	DTO
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Email       string `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string `gorm:"type:varchar(15);not null" json:"phone"`
	Subject     string `gorm:"type:varchar(200);not null" json:"subject"`
	InquiryType string `gorm:"size:20;default:general" json:"inquiryType"`
	Message     string `gorm:"type:text;not null" json:"message"`

	// Gói tour chỉ là tham chiếu tùy chọn; xóa gói thì set null, inquiry vẫn còn
	PackageId *uint    `gorm:"index" json:"packageId"`
	Package   *Package `gorm:"foreignKey:PackageId;constraint:OnDelete:SET NULL" json:"package,omitempty"`

	Status        string `gorm:"size:20;default:new;index" json:"status"`
	AdminResponse string `gorm:"type:text" json:"adminResponse"`
}

type CreateContactInput struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,max=15"`
	Subject     string `json:"subject" form:"subject" validate:"required,max=200"`
	InquiryType string `json:"inquiryType" form:"inquiry_type" validate:"omitempty,oneof=general package booking complaint feedback"`
	Message     string `json:"message" form:"message" validate:"required"`
	PackageId   *uint  `json:"packageId" form:"package_id"`
}

type RespondInquiryInput struct {
	AdminResponse string `json:"adminResponse" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=new in_progress resolved closed"`
}
