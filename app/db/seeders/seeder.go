package seeders

import (
	"github.com/vastra-store/vastra/app/db/fakers"
	"github.com/vastra-store/vastra/app/models"
	"gorm.io/gorm"
)

var catalog = []struct {
	Category string
	Subs     []models.SubCategory
}{
	{
		Category: "Men",
		Subs: []models.SubCategory{
			{Name: "T-Shirts", SizeOptions: models.StringList{"S", "M", "L", "XL"}},
			{Name: "Jeans", SizeOptions: models.StringList{"30", "32", "34", "36"}},
			{Name: "Shoes", SizeOptions: models.StringList{"7", "8", "9", "10"}},
		},
	},
	{
		Category: "Women",
		Subs: []models.SubCategory{
			{Name: "Kurtis", SizeOptions: models.StringList{"S", "M", "L"}},
			{Name: "Sarees", SizeOptions: models.StringList{"Free Size"}},
		},
	},
	{
		Category: "Kids",
		Subs: []models.SubCategory{
			{Name: "T-Shirts", SizeOptions: models.StringList{"2-4Y", "4-6Y", "6-8Y"}},
		},
	},
}

// DBSeed fills an empty database with a small browsable catalog. Categories
// are looked up by name first so reruns do not duplicate them.
func DBSeed(db *gorm.DB) error {
	for _, entry := range catalog {
		category := &models.Category{Name: entry.Category}
		if err := db.Debug().FirstOrCreate(category, "name = ?", entry.Category).Error; err != nil {
			return err
		}

		for i := range entry.Subs {
			sub := entry.Subs[i]
			sub.CategoryID = category.ID
			if err := db.Debug().FirstOrCreate(&sub, "category_id = ? AND name = ?", category.ID, sub.Name).Error; err != nil {
				return err
			}

			for n := 0; n < 4; n++ {
				product := fakers.ProductFaker(category, &sub)
				if err := db.Debug().Create(product).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
