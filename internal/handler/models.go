package handler

import (
	"time"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/shopspring/decimal"
)

// OrderItem товар в заказе
type OrderItem struct {
	ProductID int              `json:"product_id" validate:"gte=0"`
	Name      string           `json:"name" validate:"required"`
	Quantity  int              `json:"quantity" validate:"gte=1"`
	Price     *decimal.Decimal `json:"price" validate:"required" swaggertype:"number"`
	Image     string           `json:"image,omitempty"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	CustomerName  string           `json:"customer_name" validate:"required"`
	CustomerEmail string           `json:"customer_email" validate:"required,email"`
	Phone         string           `json:"phone" validate:"required"`
	Address       string           `json:"address" validate:"required"`
	Products      []OrderItem      `json:"products" validate:"dive"`
	TotalAmount   *decimal.Decimal `json:"total_amount" validate:"required" swaggertype:"number"`
	PaymentMethod string           `json:"payment_method" validate:"required"`
}

// UpdateStatusRequest тело запроса на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BulkStatusRequest тело запроса на массовую смену статуса
type BulkStatusRequest struct {
	OrderIDs []string `json:"order_ids" validate:"required,min=1,dive,required"`
	Status   string   `json:"status" validate:"required"`
}

// OrderItemResponse товар в ответе
type OrderItemResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// Order представляет заказ
type Order struct {
	ID            string              `json:"id"`
	OrderID       string              `json:"order_id"`
	AdminToken    string              `json:"admin_token,omitempty"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	Products      []OrderItemResponse `json:"products"`
	TotalAmount   float64             `json:"total_amount"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	EmailSent     bool                `json:"email_sent"`
	Timestamp     time.Time           `json:"timestamp"`
}

// BulkStatusResponse отчёт о массовой смене статуса
type BulkStatusResponse struct {
	Status  string   `json:"status" example:"partial_success"`
	Success []string `json:"success"`
	Failed  []string `json:"failed"`
}

func OrderItemJSONToEntity(i OrderItem) entities.OrderItem {
	item := entities.OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Image:     i.Image,
	}
	if i.Price != nil {
		item.Price = *i.Price
	}
	return item
}

func CreateOrderJSONToDraft(r CreateOrderRequest) entities.OrderDraft {
	products := make([]entities.OrderItem, 0, len(r.Products))
	for _, it := range r.Products {
		products = append(products, OrderItemJSONToEntity(it))
	}

	draft := entities.OrderDraft{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Phone:         r.Phone,
		Address:       r.Address,
		Products:      products,
		PaymentMethod: r.PaymentMethod,
	}
	if r.TotalAmount != nil {
		draft.TotalAmount = *r.TotalAmount
	}
	return draft
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price.InexactFloat64(),
		Image:     i.Image,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	products := make([]OrderItemResponse, 0, len(o.Products))
	for _, it := range o.Products {
		products = append(products, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:            o.ID,
		OrderID:       o.OrderID,
		AdminToken:    o.AdminToken,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Phone:         o.Phone,
		Address:       o.Address,
		Products:      products,
		TotalAmount:   o.TotalAmount.InexactFloat64(),
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		EmailSent:     o.EmailSent,
		Timestamp:     o.Timestamp,
	}
}

func BulkResultEntityToJSON(r entities.BulkUpdateResult) BulkStatusResponse {
	success, failed := r.Success, r.Failed
	if success == nil {
		success = []string{}
	}
	if failed == nil {
		failed = []string{}
	}
	return BulkStatusResponse{
		Status:  r.Status(),
		Success: success,
		Failed:  failed,
	}
}
