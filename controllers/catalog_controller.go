package controllers

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"watch-shop/config"
	"watch-shop/logger"
	"watch-shop/models"
	"watch-shop/services"
	"watch-shop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Card truncation lengths, matching the storefront product cards.
const (
	titleMax = 60
	descMax  = 120
)

type CatalogController struct {
	catalogService *services.CatalogService
	log            *logger.Logger
}

func NewCatalogController(catalogService *services.CatalogService, log *logger.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, log: log}
}

func (ctrl *CatalogController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (ctrl *CatalogController) generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}

	if page > 1 {
		links.Prev = makeURL(page - 1)
	}
	if page < totalPages {
		links.Next = makeURL(page + 1)
	}

	return links
}

func productCacheKey(search, sortKey string, page, limit int) string {
	return fmt.Sprintf("products_list_q%s_s%s_p%d_l%d", search, sortKey, page, limit)
}

// @Summary Browse products
// @Description Get a filtered, sorted, paginated page of the catalog
// @Tags Products
// @Produce json
// @Param search query string false "Search by title or brand"
// @Param sort query string false "Sort key" Enums(popular, low, high, rating)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(9)
// @Success 200 {object} models.HATEOASResponse
// @Router /products [get]
func (ctrl *CatalogController) GetAllProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	sortKey := c.DefaultQuery("sort", services.SortPopular)
	page, limit := ctrl.getPaginationParams(c, config.AppConfig.PageSize)

	cacheKey := productCacheKey(search, sortKey, page, limit)
	if cached, ok := models.CacheGet(cacheKey); ok {
		c.Data(200, "application/json", []byte(cached))
		return
	}

	pageItems, total := ctrl.catalogService.SearchProducts(search, sortKey, page, limit)
	totalPages := services.TotalPages(total, limit)

	products := []gin.H{}
	for _, p := range pageItems {
		products = append(products, gin.H{
			"id":            p.ID,
			"title":         utils.Truncate(p.Title, titleMax),
			"brand":         p.Brand,
			"price":         p.Price,
			"price_display": utils.FormatCurrency(p.Price),
			"img":           p.Img,
			"description":   utils.Truncate(p.Description, descMax),
			"rating":        p.Rating,
		})
	}

	response := models.HATEOASResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
		Links: ctrl.generateLinks(c, page, limit, totalPages),
	}

	if jsonData, err := json.Marshal(response); err == nil {
		models.CacheSet(cacheKey, string(jsonData), 5*time.Minute)
	}

	ctrl.log.Debug("products listed",
		zap.String("search", search),
		zap.String("sort", sortKey),
		zap.Int("page", page),
		zap.Int("results", len(pageItems)))

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get full product details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved",
		"data": gin.H{
			"id":            product.ID,
			"title":         product.Title,
			"brand":         product.Brand,
			"price":         product.Price,
			"price_display": utils.FormatCurrency(product.Price),
			"img":           product.Img,
			"description":   product.Description,
			"rating":        product.Rating,
		},
	})
}

// @Summary Get all brands
// @Description Get the distinct brands of the catalog with product counts
// @Tags Brands
// @Produce json
// @Success 200 {object} models.Response
// @Router /brands [get]
func (ctrl *CatalogController) GetAllBrands(c *gin.Context) {
	brands := ctrl.catalogService.GetAllBrands()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Brands retrieved",
		"data":    brands,
	})
}
