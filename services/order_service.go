package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"watch-shop/models"
	"watch-shop/utils"
)

const (
	ContactChat = "chat"
	ContactMail = "mail"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

// BuildOrderSummary renders the cart as the message sent to the vendor:
// greeting, intent, one line per cart line, total, confirmation request,
// contact email and closing.
func (s *OrderService) BuildOrderSummary(cart models.CartView, vendor models.VendorInfo) string {
	lines := []string{
		fmt.Sprintf("Hello %s,", vendor.Name),
		"I would like to order the following from your store:",
	}

	for _, line := range cart.Lines {
		title := line.Product.Title
		if title == "" {
			title = "Item"
		}
		lines = append(lines, fmt.Sprintf("- %s x %d — %s each",
			title, line.Quantity, utils.FormatCurrency(line.Product.Price)))
	}

	lines = append(lines,
		fmt.Sprintf("Total: %s", utils.FormatCurrency(cart.TotalValue)),
		"Please confirm availability and payment instructions.",
		fmt.Sprintf("Contact email: %s", vendor.Email),
		"Thanks!",
	)

	return strings.Join(lines, "\n")
}

// BuildContactLink builds the outbound link for kind: a WhatsApp deep link
// carrying the full summary, or a mailto URL with a short total-only body.
func (s *OrderService) BuildContactLink(kind string, cart models.CartView, vendor models.VendorInfo) string {
	if kind == ContactMail {
		return s.buildMailLink(cart, vendor)
	}
	return s.buildChatLink(cart, vendor)
}

func (s *OrderService) buildChatLink(cart models.CartView, vendor models.VendorInfo) string {
	phone := whitespacePattern.ReplaceAllString(vendor.PhoneIntl, "")
	phone = strings.TrimPrefix(phone, "+")
	msg := encodeComponent(s.BuildOrderSummary(cart, vendor))
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, msg)
}

func (s *OrderService) buildMailLink(cart models.CartView, vendor models.VendorInfo) string {
	body := fmt.Sprintf(
		"Hello %s,\n\nI want to order the following items:\n\nTotal: %s\n\nPlease get back to me with payment/availability details.\n\nThanks.",
		vendor.Name, utils.FormatCurrency(cart.TotalValue))
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		vendor.Email, encodeComponent("Order enquiry"), encodeComponent(body))
}

// encodeComponent percent-encodes s for use in a URL query component,
// using %20 for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
