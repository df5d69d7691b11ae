package services

import (
	"net/url"
	"strings"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handoffFixture() (*entity.Branch, *entity.Order, []repository.OrderItemDetail) {
	branch := &entity.Branch{
		Name:        "Lekki Branch",
		WhatsApp:    "+234 800-000-0001",
		DeliveryFee: 500,
	}
	order := &entity.Order{
		Reference:       "ORD-AB12CD34",
		CustomerName:    "Ada Obi",
		CustomerPhone:   "+2348011111111",
		CustomerAddress: "5 Marina Road",
		TotalAmount:     8000,
		Status:          entity.OrderPending,
	}
	items := []repository.OrderItemDetail{
		{FoodItemName: "Suya Platter", Quantity: 2, Price: 1000},
		{FoodItemName: "Grilled Catfish", Quantity: 1, Price: 6000},
	}
	return branch, order, items
}

func TestBuildMessageFormat(t *testing.T) {
	svc := NewWhatsAppService()
	branch, order, items := handoffFixture()

	msg := svc.BuildMessage(branch, order, items)

	assert.True(t, strings.HasPrefix(msg, "Order from Lekki Branch - Order ID: ORD-AB12CD34"))
	assert.Contains(t, msg, "Name: Ada Obi")
	assert.Contains(t, msg, "Phone: +2348011111111")
	assert.Contains(t, msg, "Address: 5 Marina Road")
	assert.Contains(t, msg, "Suya Platter x2 = 2000")
	assert.Contains(t, msg, "Grilled Catfish x1 = 6000")
	assert.Contains(t, msg, "Subtotal = 8000")
	assert.Contains(t, msg, "Delivery Fee = 500")
	assert.Contains(t, msg, "Total = 8500")
	assert.Contains(t, msg, "Delivery Method: Home Delivery")
	assert.Contains(t, msg, "Please confirm this order")
}

func TestBuildLinkCleansNumberAndEscapesText(t *testing.T) {
	svc := NewWhatsAppService()

	link := svc.BuildLink("+234 800-000-0001", "Order from Lekki & co")

	require.True(t, strings.HasPrefix(link, "https://wa.me/2348000000001?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Order from Lekki & co", u.Query().Get("text"))
}

func TestBuildHandoffLinkCarriesFullMessage(t *testing.T) {
	svc := NewWhatsAppService()
	branch, order, items := handoffFixture()

	h := svc.BuildHandoff(branch, order, items)

	u, err := url.Parse(h.Link)
	require.NoError(t, err)
	assert.Equal(t, h.Message, u.Query().Get("text"))
	assert.Equal(t, "wa.me", u.Host)
}

func TestQRProducesPNG(t *testing.T) {
	svc := NewWhatsAppService()

	png, err := svc.QR("https://wa.me/2348000000001?text=hello")
	require.NoError(t, err)
	// PNG magic bytes
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
