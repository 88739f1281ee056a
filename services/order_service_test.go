package services

import (
	"strings"
	"testing"

	"watch-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVendor() models.VendorInfo {
	return models.VendorInfo{
		Name:       "Samson",
		PhoneLocal: "07069761167",
		PhoneIntl:  "+2347069761167",
		Email:      "otalorsamson50@gmail.com",
	}
}

func testCart() models.CartView {
	return models.CartView{
		Lines: []models.CartLine{
			{Product: models.Product{ID: 1, Title: "Rolex X", Price: 15000}, Quantity: 2},
			{Product: models.Product{ID: 2, Title: "Omega Y", Price: 9000}, Quantity: 1},
		},
		TotalCount: 3,
		TotalValue: 39000,
	}
}

func TestBuildOrderSummary(t *testing.T) {
	svc := NewOrderService()
	summary := svc.BuildOrderSummary(testCart(), testVendor())

	lines := strings.Split(summary, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Hello Samson,", lines[0])
	assert.Equal(t, "I would like to order the following from your store:", lines[1])
	assert.Equal(t, "- Rolex X x 2 — ₦15,000 each", lines[2])
	assert.Equal(t, "- Omega Y x 1 — ₦9,000 each", lines[3])
	assert.Equal(t, "Total: ₦39,000", lines[4])
	assert.Equal(t, "Please confirm availability and payment instructions.", lines[5])
	assert.Equal(t, "Contact email: otalorsamson50@gmail.com", lines[6])
	assert.Equal(t, "Thanks!", lines[7])
}

func TestBuildOrderSummaryEmptyCart(t *testing.T) {
	svc := NewOrderService()
	summary := svc.BuildOrderSummary(models.CartView{}, testVendor())

	assert.Contains(t, summary, "Total: ₦0")
	assert.NotContains(t, summary, "- ")
}

func TestBuildOrderSummaryUntitledLine(t *testing.T) {
	svc := NewOrderService()
	cart := models.CartView{
		Lines:      []models.CartLine{{Product: models.Product{ID: 1, Price: 100}, Quantity: 1}},
		TotalCount: 1,
		TotalValue: 100,
	}

	summary := svc.BuildOrderSummary(cart, testVendor())
	assert.Contains(t, summary, "- Item x 1")
}

func TestBuildChatLink(t *testing.T) {
	svc := NewOrderService()
	link := svc.BuildContactLink(ContactChat, testCart(), testVendor())

	// international number keeps digits only, leading + stripped
	assert.True(t, strings.HasPrefix(link, "https://wa.me/2347069761167?text="), link)

	text := strings.TrimPrefix(link, "https://wa.me/2347069761167?text=")
	assert.Contains(t, text, "Rolex%20X")
	assert.Contains(t, text, "%0A")
	assert.NotContains(t, text, "+")
}

func TestBuildMailLink(t *testing.T) {
	svc := NewOrderService()
	link := svc.BuildContactLink(ContactMail, testCart(), testVendor())

	assert.True(t, strings.HasPrefix(link, "mailto:otalorsamson50@gmail.com?subject=Order%20enquiry&body="), link)

	// the mail body carries only the total, not the itemized lines
	assert.Contains(t, link, "Total")
	assert.NotContains(t, link, "Rolex")
}
