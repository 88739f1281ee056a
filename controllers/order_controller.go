package controllers

import (
	"watch-shop/config"
	"watch-shop/logger"
	"watch-shop/models"
	"watch-shop/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	cartService  *services.CartService
	orderService *services.OrderService
	emailService *models.EmailService
	log          *logger.Logger
}

func NewOrderController(cartService *services.CartService, orderService *services.OrderService, log *logger.Logger) *OrderController {
	emailService, err := models.NewEmailService()
	if err != nil {
		log.Warn("email disabled", zap.Error(err))
		emailService = nil
	}

	return &OrderController{
		cartService:  cartService,
		orderService: orderService,
		emailService: emailService,
		log:          log,
	}
}

func vendorInfo() models.VendorInfo {
	return models.VendorInfo{
		Name:       config.AppConfig.VendorName,
		PhoneLocal: config.AppConfig.VendorPhoneLocal,
		PhoneIntl:  config.AppConfig.VendorPhoneIntl,
		Email:      config.AppConfig.VendorEmail,
	}
}

// @Summary Get vendor info
// @Description Get the vendor's contact details
// @Tags Vendor
// @Produce json
// @Success 200 {object} models.Response
// @Router /vendor [get]
func (ctrl *OrderController) GetVendor(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Vendor retrieved",
		"data":    vendorInfo(),
	})
}

// @Summary Checkout
// @Description Compile the cart into an order summary and outbound contact links
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/checkout [get]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	cart := ctrl.cartService.GetCart(c.GetString("session_id"))
	vendor := vendorInfo()

	data := models.CheckoutData{
		Summary:  ctrl.orderService.BuildOrderSummary(cart, vendor),
		ChatLink: ctrl.orderService.BuildContactLink(services.ContactChat, cart, vendor),
		MailLink: ctrl.orderService.BuildContactLink(services.ContactMail, cart, vendor),
		Cart:     cart,
		Vendor:   vendor,
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout summary built",
		"data":    data,
	})
}

// @Summary Send order enquiry
// @Description Email the order summary to the vendor (requires SMTP configuration)
// @Tags Cart
// @Accept json
// @Produce json
// @Param enquiry body models.EnquiryRequest false "Enquiry options"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /cart/enquiry [post]
func (ctrl *OrderController) SendEnquiry(c *gin.Context) {
	if ctrl.emailService == nil {
		c.JSON(503, gin.H{"success": false, "message": "Email is not configured"})
		return
	}

	cart := ctrl.cartService.GetCart(c.GetString("session_id"))
	if cart.TotalCount == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	var req models.EnquiryRequest
	_ = c.ShouldBindJSON(&req)

	vendor := vendorInfo()
	summary := ctrl.orderService.BuildOrderSummary(cart, vendor)

	if err := ctrl.emailService.SendOrderEnquiry(vendor, summary, req.ReplyTo); err != nil {
		ctrl.log.Error("enquiry send failed", zap.Error(err))
		c.JSON(500, gin.H{"success": false, "message": "Failed to send enquiry"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Enquiry sent to vendor",
		"data":    gin.H{"vendor_email": vendor.Email},
	})
}
