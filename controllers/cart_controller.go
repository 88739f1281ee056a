package controllers

import (
	"strconv"

	"watch-shop/logger"
	"watch-shop/models"
	"watch-shop/services"
	"watch-shop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
	log            *logger.Logger
}

func NewCartController(cartService *services.CartService, catalogService *services.CatalogService, log *logger.Logger) *CartController {
	return &CartController{cartService: cartService, catalogService: catalogService, log: log}
}

func cartResponse(message string, cart models.CartView) gin.H {
	return gin.H{
		"success": true,
		"message": message,
		"data": gin.H{
			"lines":         cart.Lines,
			"total_count":   cart.TotalCount,
			"total_value":   cart.TotalValue,
			"total_display": utils.FormatCurrency(cart.TotalValue),
		},
	}
}

// @Summary Get cart
// @Description Get the session's cart with totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cartService.GetCart(c.GetString("session_id"))
	c.JSON(200, cartResponse("Cart retrieved", cart))
}

// @Summary Add product to cart
// @Description Add one unit of a product; an existing line is incremented
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	cart := ctrl.cartService.AddToCart(c.GetString("session_id"), *product)

	ctrl.log.Debug("product added to cart",
		zap.Int("product_id", id),
		zap.Int("total_count", cart.TotalCount))

	c.JSON(200, cartResponse("Product added to cart", cart))
}

// @Summary Remove cart line
// @Description Delete the line for a product; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cart := ctrl.cartService.RemoveFromCart(c.GetString("session_id"), id)
	c.JSON(200, cartResponse("Product removed from cart", cart))
}

// @Summary Increment quantity
// @Description Increment an existing line's quantity; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/increment [post]
func (ctrl *CartController) IncrementQty(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cart := ctrl.cartService.IncrementQty(c.GetString("session_id"), id)
	c.JSON(200, cartResponse("Quantity incremented", cart))
}

// @Summary Decrement quantity
// @Description Decrement a line's quantity, removing it at zero; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/decrement [post]
func (ctrl *CartController) DecrementQty(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cart := ctrl.cartService.DecrementQty(c.GetString("session_id"), id)
	c.JSON(200, cartResponse("Quantity decremented", cart))
}
