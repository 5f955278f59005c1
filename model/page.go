package model

type Page struct {
	DTO
	Title           string `gorm:"type:varchar(200);not null" validate:"required" json:"title"`
	Slug            string `gorm:"uniqueIndex;size:220" json:"slug"`
	Content         string `gorm:"type:text;not null" validate:"required" json:"content"`
	MetaDescription string `gorm:"type:varchar(160)" json:"metaDescription"`
	Active          bool   `gorm:"default:true" json:"active"`
}

type CreatePageInput struct {
	Title           string `json:"title" validate:"required,max=200"`
	Slug            string `json:"slug" validate:"omitempty,max=220"`
	Content         string `json:"content" validate:"required"`
	MetaDescription string `json:"metaDescription" validate:"max=160"`
	Active          *bool  `json:"active"`
}

type EditPageInput struct {
	Title           *string `json:"title" validate:"omitempty,max=200"`
	Content         *string `json:"content"`
	MetaDescription *string `json:"metaDescription" validate:"omitempty,max=160"`
	Active          *bool   `json:"active"`
}

// SiteSettings là bản ghi duy nhất; tạo mới bị chặn khi đã tồn tại, không có route xóa
type SiteSettings struct {
	DTO
	SiteName    string  `gorm:"type:varchar(200);default:Travel Agency" json:"siteName"`
	SiteTagline string  `gorm:"type:varchar(200)" json:"siteTagline"`
	Logo        *string `gorm:"type:varchar(255)" json:"logo"`
	Favicon     *string `gorm:"type:varchar(255)" json:"favicon"`

	ContactEmail   string `gorm:"type:varchar(255);not null" validate:"required,email" json:"contactEmail"`
	ContactPhone   string `gorm:"type:varchar(15);not null" validate:"required" json:"contactPhone"`
	ContactPhone2  string `gorm:"type:varchar(15)" json:"contactPhone2"`
	WhatsappNumber string `gorm:"type:varchar(15)" json:"whatsappNumber"`
	Address        string `gorm:"type:text" json:"address"`

	FacebookUrl  string `gorm:"type:varchar(255)" validate:"omitempty,url" json:"facebookUrl"`
	InstagramUrl string `gorm:"type:varchar(255)" validate:"omitempty,url" json:"instagramUrl"`
	TwitterUrl   string `gorm:"type:varchar(255)" validate:"omitempty,url" json:"twitterUrl"`
	YoutubeUrl   string `gorm:"type:varchar(255)" validate:"omitempty,url" json:"youtubeUrl"`
	LinkedinUrl  string `gorm:"type:varchar(255)" validate:"omitempty,url" json:"linkedinUrl"`

	HeroTitle    string  `gorm:"type:varchar(200)" json:"heroTitle"`
	HeroSubtitle string  `gorm:"type:varchar(200)" json:"heroSubtitle"`
	HeroImage    *string `gorm:"type:varchar(255)" json:"heroImage"`

	AboutUsShort string `gorm:"type:text" json:"aboutUsShort"`

	MetaDescription string `gorm:"type:varchar(160)" json:"metaDescription"`
	MetaKeywords    string `gorm:"type:varchar(200)" json:"metaKeywords"`
}

type Slider struct {
	DTO
	Title      string `gorm:"type:varchar(200);not null" validate:"required" json:"title"`
	Subtitle   string `gorm:"type:varchar(200)" json:"subtitle"`
	Image      string `gorm:"type:varchar(255);not null" validate:"required" json:"image"`
	ButtonText string `gorm:"type:varchar(50)" json:"buttonText"`
	ButtonLink string `gorm:"type:varchar(200)" json:"buttonLink"`
	Order      int    `gorm:"column:sort_order;default:0;index" json:"order"`
	Active     bool   `gorm:"default:true" json:"active"`
}

type CreateSliderInput struct {
	Title      string `json:"title" validate:"required,max=200"`
	Subtitle   string `json:"subtitle" validate:"max=200"`
	Image      string `json:"image" validate:"required,max=255"`
	ButtonText string `json:"buttonText" validate:"max=50"`
	ButtonLink string `json:"buttonLink" validate:"max=200"`
	Order      int    `json:"order"`
	Active     *bool  `json:"active"`
}

type EditSliderInput struct {
	Title      *string `json:"title" validate:"omitempty,max=200"`
	Subtitle   *string `json:"subtitle" validate:"omitempty,max=200"`
	Image      *string `json:"image" validate:"omitempty,max=255"`
	ButtonText *string `json:"buttonText" validate:"omitempty,max=50"`
	ButtonLink *string `json:"buttonLink" validate:"omitempty,max=200"`
	Order      *int    `json:"order"`
	Active     *bool   `json:"active"`
}
