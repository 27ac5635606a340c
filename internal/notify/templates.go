package notify

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

type itemView struct {
	Name      string
	Quantity  int
	Price     string
	LineTotal string
}

type orderView struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	Phone         string
	Address       string
	Items         []itemView
	Total         string
	PaymentMethod string
	PlacedAt      string
}

func newOrderView(o entities.Order) orderView {
	items := make([]itemView, 0, len(o.Products))
	for _, it := range o.Products {
		items = append(items, itemView{
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			LineTotal: money(it.LineTotal()),
		})
	}

	return orderView{
		OrderID:       o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Phone:         o.Phone,
		Address:       o.Address,
		Items:         items,
		Total:         money(o.TotalAmount),
		PaymentMethod: paymentLabel(o.PaymentMethod),
		PlacedAt:      o.Timestamp.Format(time.RFC1123),
	}
}

func money(d decimal.Decimal) string {
	return currencySymbol + d.StringFixed(2)
}

func paymentLabel(method string) string {
	switch method {
	case entities.PaymentQRCode:
		return "QR code"
	case entities.PaymentUPI:
		return "UPI"
	case entities.PaymentCOD:
		return "Cash on delivery"
	default:
		return method
	}
}

var customerHTML = htmltemplate.Must(htmltemplate.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order, {{.CustomerName}}!</h2>
  <p>Your order <strong>{{.OrderID}}</strong> has been received and is being processed.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><th align="left">Product</th><th>Qty</th><th align="right">Price</th><th align="right">Total</th></tr>
    {{- range .Items}}
    <tr><td>{{.Name}}</td><td align="center">{{.Quantity}}</td><td align="right">{{.Price}}</td><td align="right">{{.LineTotal}}</td></tr>
    {{- end}}
  </table>
  <p><strong>Total: {{.Total}}</strong></p>
  <p>Payment method: {{.PaymentMethod}}</p>
  <p>Delivery address:<br>{{.Address}}</p>
  <p>We will contact you at {{.Phone}} if anything comes up.</p>
</body>
</html>`))

var adminHTML = htmltemplate.Must(htmltemplate.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New order {{.OrderID}}</h2>
  <p>Placed at {{.PlacedAt}}</p>
  <h3>Customer</h3>
  <p>{{.CustomerName}}<br>{{.CustomerEmail}}<br>{{.Phone}}</p>
  <h3>Address</h3>
  <p>{{.Address}}</p>
  <h3>Products</h3>
  <ul>
    {{- range .Items}}
    <li>{{.Name}} x {{.Quantity}} @ {{.Price}} = {{.LineTotal}}</li>
    {{- else}}
    <li>no products</li>
    {{- end}}
  </ul>
  <p><strong>Total: {{.Total}}</strong> ({{.PaymentMethod}})</p>
</body>
</html>`))

var orderText = texttemplate.Must(texttemplate.New("text").Parse(`New order {{.OrderID}}

Customer: {{.CustomerName}}
Email: {{.CustomerEmail}}
Phone: {{.Phone}}
Address: {{.Address}}

Products:
{{- range .Items}}
- {{.Name}} x {{.Quantity}} @ {{.Price}} = {{.LineTotal}}
{{- else}}
- none
{{- end}}

Total: {{.Total}}
Payment: {{.PaymentMethod}}
`))

func renderCustomerMail(o entities.Order) (Mail, error) {
	var html bytes.Buffer
	if err := customerHTML.Execute(&html, newOrderView(o)); err != nil {
		return Mail{}, err
	}
	return Mail{
		To:      o.CustomerEmail,
		Subject: "Order confirmation " + o.OrderID,
		HTML:    html.String(),
	}, nil
}

func renderAdminMail(to string, o entities.Order) (Mail, error) {
	view := newOrderView(o)

	var html bytes.Buffer
	if err := adminHTML.Execute(&html, view); err != nil {
		return Mail{}, err
	}
	text, err := renderText(view)
	if err != nil {
		return Mail{}, err
	}
	return Mail{
		To:      to,
		Subject: "New order " + o.OrderID + " from " + o.CustomerName,
		HTML:    html.String(),
		Text:    text,
	}, nil
}

func renderChatText(o entities.Order) (string, error) {
	return renderText(newOrderView(o))
}

func renderText(view orderView) (string, error) {
	var buf strings.Builder
	if err := orderText.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
