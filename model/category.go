package model

type PackageCategory struct {
	DTO
	Name        string `gorm:"type:varchar(100);not null" validate:"required" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Icon        *string `gorm:"type:varchar(255)" json:"icon"`

	Packages []Package `gorm:"foreignKey:CategoryId" json:"packages,omitempty"`
}

type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"omitempty,max=120"`
	Description string  `json:"description"`
	Icon        *string `json:"icon" validate:"omitempty,url"`
}

type EditCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" validate:"omitempty,url"`
}
