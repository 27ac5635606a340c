package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/SergeyBogomolovv/order-intake/pkg/tasks"
	"golang.org/x/sync/errgroup"
)

const listLimit = 100

// Названия фоновых задач, по ним же размечены метрики раннера
const (
	TaskPersistOrder = "persist_order"
	TaskOrderEmails  = "send_order_emails"
	TaskAdminChat    = "send_admin_chat"
)

type OrderStore interface {
	Create(ctx context.Context, order entities.Order) error
	Get(ctx context.Context, orderID string) (entities.Order, error)
	List(ctx context.Context, limit int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type Notifier interface {
	SendOrderEmails(ctx context.Context, order entities.Order)
	SendAdminChat(ctx context.Context, order entities.Order) string
}

type TaskScheduler interface {
	Submit(name string, fn tasks.Func)
}

type orderService struct {
	logger          *slog.Logger
	store           OrderStore
	notifier        Notifier
	scheduler       TaskScheduler
	bulkConcurrency int
}

func NewOrderService(logger *slog.Logger, store OrderStore, notifier Notifier, scheduler TaskScheduler, bulkConcurrency int) *orderService {
	if bulkConcurrency < 1 {
		bulkConcurrency = 1
	}
	return &orderService{
		logger:          logger.With(slog.String("service", "order")),
		store:           store,
		notifier:        notifier,
		scheduler:       scheduler,
		bulkConcurrency: bulkConcurrency,
	}
}

// CreateOrder builds the order and schedules persistence and notifications.
// It returns before any of them has run, so a store failure is never reported
// to the caller.
func (s *orderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	order := entities.NewOrder(draft)

	s.scheduler.Submit(TaskPersistOrder, func(ctx context.Context) error {
		return s.store.Create(ctx, order)
	})
	s.scheduler.Submit(TaskOrderEmails, func(ctx context.Context) error {
		s.notifier.SendOrderEmails(ctx, order)
		return nil
	})
	s.scheduler.Submit(TaskAdminChat, func(ctx context.Context) error {
		s.notifier.SendAdminChat(ctx, order)
		return nil
	})

	s.logger.InfoContext(ctx, "order accepted",
		slog.String("order_id", order.OrderID),
		slog.String("customer_email", order.CustomerEmail),
		slog.Int("products", len(order.Products)),
	)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.store.List(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := s.store.Get(ctx, orderID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	if strings.TrimSpace(status) == "" {
		return entities.ErrStatusRequired
	}
	return s.store.UpdateStatus(ctx, orderID, status)
}

// BulkUpdateStatus updates every order independently. A failed id never stops
// the others; the result keeps the input order.
func (s *orderService) BulkUpdateStatus(ctx context.Context, orderIDs []string, status string) entities.BulkUpdateResult {
	errs := make([]error, len(orderIDs))

	var g errgroup.Group
	g.SetLimit(s.bulkConcurrency)
	for i, orderID := range orderIDs {
		g.Go(func() error {
			errs[i] = s.UpdateOrderStatus(ctx, orderID, status)
			return nil
		})
	}
	_ = g.Wait()

	result := entities.BulkUpdateResult{Success: []string{}, Failed: []string{}}
	for i, orderID := range orderIDs {
		if errs[i] != nil {
			s.logger.WarnContext(ctx, "bulk status update failed for order",
				slog.String("order_id", orderID), slog.Any("error", errs[i]))
			result.Failed = append(result.Failed, orderID)
			continue
		}
		result.Success = append(result.Success, orderID)
	}

	s.logger.InfoContext(ctx, "bulk status update finished",
		slog.String("status", status),
		slog.Int("success", len(result.Success)),
		slog.Int("failed", len(result.Failed)),
	)
	return result
}
