package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending = "Pending"

	// Префикс бизнес-ключа заказа, по нему ищем запись во внешнем хранилище
	OrderIDPrefix = "ORD-"
	orderIDSuffix = 8
)

const (
	PaymentQRCode = "qr_code"
	PaymentUPI    = "upi"
	PaymentCOD    = "cod"
)

type OrderItem struct {
	ProductID int
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Image     string
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID         string
	OrderID    string
	AdminToken string

	CustomerName  string
	CustomerEmail string
	Phone         string
	Address       string

	Products      []OrderItem
	TotalAmount   decimal.Decimal
	PaymentMethod string

	Status    string
	EmailSent bool
	Timestamp time.Time
}

// OrderDraft is the validated client input an Order is built from.
type OrderDraft struct {
	CustomerName  string
	CustomerEmail string
	Phone         string
	Address       string
	Products      []OrderItem
	TotalAmount   decimal.Decimal
	PaymentMethod string
}

// NewOrder builds an Order from the draft and fills every derived field.
// total_amount is taken as is, it is not checked against the line totals.
func NewOrder(d OrderDraft) Order {
	products := make([]OrderItem, len(d.Products))
	copy(products, d.Products)

	return Order{
		ID:            uuid.NewString(),
		OrderID:       NewOrderID(),
		AdminToken:    uuid.NewString(),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		Phone:         d.Phone,
		Address:       d.Address,
		Products:      products,
		TotalAmount:   d.TotalAmount,
		PaymentMethod: d.PaymentMethod,
		Status:        StatusPending,
		EmailSent:     false,
		Timestamp:     time.Now().UTC(),
	}
}

func NewOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderIDSuffix]
	return OrderIDPrefix + strings.ToUpper(suffix)
}
