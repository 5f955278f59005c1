package model

type Account struct {
	DTO
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" validate:"required" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     string `gorm:"size:20;default:STAFF" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN STAFF"`
}
