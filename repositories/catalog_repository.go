package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"watch-shop/models"
	"watch-shop/utils"
)

// CatalogRepository holds the normalized product catalog in memory. The
// catalog is read once from the data file and never mutated afterwards.
type CatalogRepository struct {
	products []models.Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: []models.Product{}}
}

func (r *CatalogRepository) LoadFromFile(path string, markup float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raw []models.RawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	r.products = Normalize(raw, markup)
	return nil
}

// Normalize maps raw catalog records into products. Malformed records never
// fail; every missing field gets a default and every record yields exactly
// one product. The markup is added to each coerced price.
func Normalize(raw []models.RawProduct, markup float64) []models.Product {
	products := make([]models.Product, 0, len(raw))
	for i, rec := range raw {
		id := i + 1
		if rec.ID != nil {
			id = *rec.ID
		}

		title := rec.Name
		if title == "" {
			title = fmt.Sprintf("Watch %d", i+1)
		}

		brand := rec.Brand
		if brand == "" {
			if fields := strings.Fields(rec.Name); len(fields) > 0 {
				brand = fields[0]
			} else {
				brand = "Brand"
			}
		}

		description := rec.Description
		if description == "" {
			description = rec.Name
		}

		rating := rec.Rating
		if rating == 0 {
			rating = 3 + float64(i%3) + float64(i%10)*0.01
		}

		products = append(products, models.Product{
			ID:          id,
			Title:       title,
			Brand:       brand,
			Price:       utils.NumericCoerce(rec.Price, 0) + markup,
			Img:         rec.Img,
			Description: description,
			Rating:      rating,
		})
	}
	return products
}

func (r *CatalogRepository) GetAllProducts() []models.Product {
	return r.products
}

func (r *CatalogRepository) GetProductByID(id int) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, errors.New("product not found")
}

// GetAllBrands returns the distinct brands of the catalog with their
// product counts, in first-seen order.
func (r *CatalogRepository) GetAllBrands() []models.Brand {
	counts := map[string]int{}
	order := []string{}
	for _, p := range r.products {
		if _, ok := counts[p.Brand]; !ok {
			order = append(order, p.Brand)
		}
		counts[p.Brand]++
	}

	brands := []models.Brand{}
	for _, name := range order {
		brands = append(brands, models.Brand{Name: name, Products: counts[name]})
	}
	return brands
}
