package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/vastra-store/vastra/app/models"
)

// ProductFaker builds a product under the given category and subcategory,
// inheriting the subcategory's size options.
func ProductFaker(category *models.Category, sub *models.SubCategory) *models.Product {
	name := fmt.Sprintf("%s %s", faker.Word(), sub.Name)
	productID := uuid.New().String()

	numImages := rand.Intn(3) + 1
	images := make(models.StringList, numImages)
	for i := range images {
		images[i] = fmt.Sprintf("/uploads/products/%s-%d.jpg", slug.Make(name), i+1)
	}

	return &models.Product{
		ID:          productID,
		Name:        name,
		Description: faker.Paragraph(),
		Price:       fakePrice(),
		Category:    category.Name,
		SubCategory: sub.Name,
		Sizes:       append(models.StringList{}, sub.SizeOptions...),
		BestSeller:  rand.Intn(4) == 0,
		Images:      images,
		Date:        time.Now(),
	}
}

func fakePrice() decimal.Decimal {
	rupees := rand.Intn(4900) + 100
	return decimal.NewFromInt(int64(rupees))
}
