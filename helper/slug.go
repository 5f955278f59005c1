package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniquePackageSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, "packages", name)
}

func GenerateUniqueCategorySlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, "package_categories", name)
}

func GenerateUniquePageSlug(tx *gorm.DB, title string) string {
	return generateUniqueSlug(tx, "pages", title)
}

func generateUniqueSlug(tx *gorm.DB, table, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Table(table).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
