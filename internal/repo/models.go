package repo

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/shopspring/decimal"
)

// Значения single-select поля payment_method во внешнем хранилище
const (
	StorePaymentOnline = "Online Payment"
	StorePaymentCOD    = "Cash on Delivery"
)

const (
	fieldOrderID   = "order_id"
	fieldStatus    = "status"
	fieldEmailSent = "email_sent"
	fieldRowID     = "Id"
	fieldCreatedAt = "CreatedAt"
)

// RowID is the store-assigned row identifier. The store returns it as a number,
// some deployments as a string.
type RowID string

func (id *RowID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = RowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RowID(n.String())
	return nil
}

func (id RowID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// flag accepts true/false, 1/0, "true"/"false" and null (false).
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	switch strings.Trim(strings.ToLower(string(data)), `"`) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Row is a record as the store returns it.
type Row struct {
	RowID         RowID               `json:"Id"`
	ID            string              `json:"id"`
	AdminToken    string              `json:"admin_token"`
	OrderID       string              `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	TotalAmount   decimal.NullDecimal `json:"total_amount"`
	PaymentMethod string              `json:"payment_method"`
	Products      json.RawMessage     `json:"products"`
	Status        string              `json:"status"`
	EmailSent     *flag               `json:"email_sent"`
	Timestamp     string              `json:"timestamp"`
	CreatedAt     string              `json:"CreatedAt"`
}

// StoredItem is an order line in the store's products column.
type StoredItem struct {
	ProductID int         `json:"product_id"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Price     json.Number `json:"price"`
	Image     string      `json:"image,omitempty"`
}

// CreatePayload is the record body sent on create. Field names follow the store schema.
type CreatePayload struct {
	ID            string       `json:"id"`
	AdminToken    string       `json:"admin_token"`
	OrderID       string       `json:"order_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	Phone         string       `json:"phone"`
	Address       string       `json:"address"`
	TotalAmount   json.Number  `json:"total_amount"`
	PaymentMethod string       `json:"payment_method"`
	Products      []StoredItem `json:"products"`
	Status        string       `json:"status"`
	EmailSent     bool         `json:"email_sent"`
	Timestamp     string       `json:"timestamp"`
}

type listResponse struct {
	List []Row `json:"list"`
}

type createResponse struct {
	RowID RowID `json:"Id"`
}

// ToStorePaymentMethod maps a client payment method to the store enum.
// Unknown methods pass through unchanged.
func ToStorePaymentMethod(method string) string {
	switch method {
	case entities.PaymentQRCode, entities.PaymentUPI:
		return StorePaymentOnline
	case entities.PaymentCOD:
		return StorePaymentCOD
	default:
		return method
	}
}

// FromStorePaymentMethod reverses ToStorePaymentMethod. upi is not recoverable,
// online payments always come back as qr_code.
func FromStorePaymentMethod(method string) string {
	switch method {
	case StorePaymentOnline:
		return entities.PaymentQRCode
	case StorePaymentCOD:
		return entities.PaymentCOD
	default:
		return method
	}
}

func EncodeProducts(items []entities.OrderItem) []StoredItem {
	stored := make([]StoredItem, 0, len(items))
	for _, it := range items {
		stored = append(stored, StoredItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     json.Number(it.Price.String()),
			Image:     it.Image,
		})
	}
	return stored
}

// ParseProducts decodes the products column, stored either as a JSON array or as
// a string holding one. Anything malformed yields an empty list.
func ParseProducts(raw json.RawMessage) []entities.OrderItem {
	items := []entities.OrderItem{}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return items
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return items
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return items
		}
	}

	var stored []StoredItem
	if err := json.Unmarshal(raw, &stored); err != nil {
		return items
	}

	for _, s := range stored {
		price := decimal.Zero
		if s.Price != "" {
			p, err := decimal.NewFromString(s.Price.String())
			if err != nil {
				return []entities.OrderItem{}
			}
			price = p
		}
		items = append(items, entities.OrderItem{
			ProductID: s.ProductID,
			Name:      s.Name,
			Quantity:  s.Quantity,
			Price:     price,
			Image:     s.Image,
		})
	}
	return items
}

// timestampLayout keeps every fraction digit, so stored timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// ParseTimestamp accepts our own format and the formats the store uses for CreatedAt.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func OrderToPayload(o entities.Order) CreatePayload {
	return CreatePayload{
		ID:            o.ID,
		AdminToken:    o.AdminToken,
		OrderID:       o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Phone:         o.Phone,
		Address:       o.Address,
		TotalAmount:   json.Number(o.TotalAmount.String()),
		PaymentMethod: ToStorePaymentMethod(o.PaymentMethod),
		Products:      EncodeProducts(o.Products),
		Status:        o.Status,
		EmailSent:     o.EmailSent,
		Timestamp:     FormatTimestamp(o.Timestamp),
	}
}

// RowToEntity normalises a store row into an Order view.
func RowToEntity(r Row) entities.Order {
	order := entities.Order{
		ID:            r.ID,
		AdminToken:    r.AdminToken,
		OrderID:       r.OrderID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Phone:         r.Phone,
		Address:       r.Address,
		Products:      ParseProducts(r.Products),
		PaymentMethod: FromStorePaymentMethod(r.PaymentMethod),
		Status:        r.Status,
	}

	if order.ID == "" {
		order.ID = string(r.RowID)
	}
	if r.TotalAmount.Valid {
		order.TotalAmount = r.TotalAmount.Decimal
	}
	if r.EmailSent != nil {
		order.EmailSent = bool(*r.EmailSent)
	}

	timestamp := r.Timestamp
	if timestamp == "" {
		timestamp = r.CreatedAt
	}
	if t, ok := ParseTimestamp(timestamp); ok {
		order.Timestamp = t
	}

	return order
}
