package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/order-intake/internal/handler"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	names    = []string{"Asha Rao", "Vikram Iyer", "Meera Nair", "Rohan Das", "Priya Menon"}
	payments = []string{"qr", "upi", "cod"}
	products = []struct {
		id    int
		name  string
		price string
	}{
		{1, "Masala Chai 250g", "180.00"},
		{2, "Filter Coffee 500g", "349.50"},
		{3, "Jaggery Cubes", "95.00"},
		{4, "Cardamom 50g", "220.00"},
	}
)

func randomPhone() string {
	return fmt.Sprintf("+91%010d", rand.Int63n(9999999999))
}

func generateRandomOrder() handler.CreateOrderRequest {
	name := names[rand.Intn(len(names))]

	total := decimal.Zero
	items := make([]handler.OrderItem, 0, 3)
	for range rand.Intn(3) + 1 {
		p := products[rand.Intn(len(products))]
		price := decimal.RequireFromString(p.price)
		qty := rand.Intn(4) + 1
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		items = append(items, handler.OrderItem{
			ProductID: p.id,
			Name:      p.name,
			Quantity:  qty,
			Price:     &price,
		})
	}

	return handler.CreateOrderRequest{
		CustomerName:  name,
		CustomerEmail: fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		Phone:         randomPhone(),
		Address:       fmt.Sprintf("%d MG Road, Bengaluru", rand.Intn(200)+1),
		Products:      items,
		TotalAmount:   &total,
		PaymentMethod: payments[rand.Intn(len(payments))],
	}
}

func main() {
	brokers := "localhost:9092"
	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		brokers = v
	}
	topic := "order-requests"
	if v, ok := os.LookupEnv("KAFKA_TOPIC"); ok {
		topic = v
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to publish order request:", err)
				continue
			}
			log.Println("order request published for", order.CustomerEmail, order.TotalAmount.StringFixed(2))
		case <-ctx.Done():
			return
		}
	}
}
