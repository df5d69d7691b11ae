package services

import (
	"fmt"
	"net/url"
	"strings"

	"backend/entity"
	"backend/repository"

	qrcode "github.com/skip2/go-qrcode"
)

// WhatsAppService formats the post-checkout order summary and builds the
// wa.me deep link addressed to the branch's configured number. The server
// never talks to WhatsApp; delivery of the message is the customer's tap.
type WhatsAppService struct{}

func NewWhatsAppService() *WhatsAppService { return &WhatsAppService{} }

type WhatsAppHandoff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

func (s *WhatsAppService) BuildHandoff(branch *entity.Branch, o *entity.Order, items []repository.OrderItemDetail) *WhatsAppHandoff {
	msg := s.BuildMessage(branch, o, items)
	return &WhatsAppHandoff{
		Message: msg,
		Link:    s.BuildLink(branch.WhatsApp, msg),
	}
}

func (s *WhatsAppService) BuildMessage(branch *entity.Branch, o *entity.Order, items []repository.OrderItemDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order from %s - Order ID: %s\n\n", branch.Name, o.Reference)
	fmt.Fprintf(&b, "Name: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "Address: %s\n\n", o.CustomerAddress)

	var subtotal int64
	for _, it := range items {
		line := it.Price * int64(it.Quantity)
		subtotal += line
		fmt.Fprintf(&b, "%s x%d = %d\n", it.FoodItemName, it.Quantity, line)
	}

	fmt.Fprintf(&b, "\nSubtotal = %d\n", subtotal)
	fmt.Fprintf(&b, "Delivery Fee = %d\n", branch.DeliveryFee)
	fmt.Fprintf(&b, "Total = %d\n", subtotal+branch.DeliveryFee)
	b.WriteString("Delivery Method: Home Delivery\n\n")
	b.WriteString("Please confirm this order and provide estimated delivery time. Thank you! 🙏")
	return b.String()
}

var numberCleaner = strings.NewReplacer("+", "", " ", "", "-", "")

func (s *WhatsAppService) BuildLink(number, message string) string {
	return "https://wa.me/" + numberCleaner.Replace(number) + "?text=" + url.QueryEscape(message)
}

// QR renders the deep link as a scannable PNG.
func (s *WhatsAppService) QR(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, 256)
}
