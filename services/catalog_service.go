package services

import (
	"math"
	"sort"
	"strings"

	"watch-shop/models"
	"watch-shop/repositories"
)

const (
	SortPopular   = "popular"
	SortPriceLow  = "low"
	SortPriceHigh = "high"
	SortRating    = "rating"
)

type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// Search filters the catalog by a case-insensitive substring match of the
// trimmed query against title or brand, then orders the result by sortKey.
// Sorts are stable: ties keep their filtered order. The input slice is
// never mutated.
func Search(catalog []models.Product, query, sortKey string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	list := []models.Product{}
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			list = append(list, p)
		}
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	}
	return list
}

// Paginate returns the page-th fixed-size slice of list, one-based. An
// out-of-range page yields an empty slice.
func Paginate(list []models.Product, pageSize, page int) []models.Product {
	start := (page - 1) * pageSize
	end := page * pageSize
	if start < 0 || start >= len(list) {
		return []models.Product{}
	}
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

func TotalPages(totalItems, pageSize int) int {
	pages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SearchProducts runs the full derivation: filter, sort, paginate. It
// returns the requested page and the filtered total.
func (s *CatalogService) SearchProducts(query, sortKey string, page, limit int) ([]models.Product, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 9
	}

	filtered := Search(s.catalogRepo.GetAllProducts(), query, sortKey)
	return Paginate(filtered, limit, page), len(filtered)
}

func (s *CatalogService) GetProductByID(id int) (*models.Product, error) {
	return s.catalogRepo.GetProductByID(id)
}

func (s *CatalogService) GetAllBrands() []models.Brand {
	return s.catalogRepo.GetAllBrands()
}
