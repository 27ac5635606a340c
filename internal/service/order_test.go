package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/SergeyBogomolovv/order-intake/internal/service"
	mocks "github.com/SergeyBogomolovv/order-intake/internal/service/mocks"
	"github.com/SergeyBogomolovv/order-intake/pkg/tasks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var draft = entities.OrderDraft{
	CustomerName:  "Asha",
	CustomerEmail: "asha@example.com",
	Phone:         "+919000000000",
	Address:       "Pune",
	Products: []entities.OrderItem{
		{ProductID: 1, Name: "Ghee", Quantity: 1, Price: decimal.RequireFromString("450")},
	},
	TotalAmount:   decimal.RequireFromString("450"),
	PaymentMethod: entities.PaymentQRCode,
}

func TestOrderService_CreateOrder(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	notifier := mocks.NewMockNotifier(t)
	scheduler := mocks.NewMockTaskScheduler(t)

	submitted := map[string]tasks.Func{}
	scheduler.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(name string, fn tasks.Func) { submitted[name] = fn }).
		Return().Times(3)

	svc := service.NewOrderService(newLogger(), store, notifier, scheduler, 1)

	order, err := svc.CreateOrder(context.Background(), draft)
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, order.OrderID)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.False(t, order.EmailSent)

	require.Contains(t, submitted, service.TaskPersistOrder)
	require.Contains(t, submitted, service.TaskOrderEmails)
	require.Contains(t, submitted, service.TaskAdminChat)

	// the deferred work operates on the very order returned to the caller
	store.EXPECT().Create(mock.Anything, order).Return(entities.ErrStoreUnavailable).Once()
	notifier.EXPECT().SendOrderEmails(mock.Anything, order).Return().Once()
	notifier.EXPECT().SendAdminChat(mock.Anything, order).Return("").Once()

	ctx := context.Background()
	assert.ErrorIs(t, submitted[service.TaskPersistOrder](ctx), entities.ErrStoreUnavailable)
	assert.NoError(t, submitted[service.TaskOrderEmails](ctx))
	assert.NoError(t, submitted[service.TaskAdminChat](ctx))
}

// Creation reports success even though persistence fails and every
// downstream call hangs. This is accepted behaviour: the caller is never told.
func TestOrderService_CreateOrder_DoesNotWaitForDeferredWork(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	notifier := mocks.NewMockNotifier(t)

	release := make(chan struct{})
	var done sync.WaitGroup
	done.Add(3)

	store.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.Order) error {
			defer done.Done()
			<-release
			return errors.New("store is down")
		}).Once()
	notifier.EXPECT().SendOrderEmails(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.Order) {
			defer done.Done()
			<-release
		}).Once()
	notifier.EXPECT().SendAdminChat(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.Order) string {
			defer done.Done()
			<-release
			return ""
		}).Once()

	runner := tasks.NewRunner(newLogger(), 1, 1, time.Minute)
	require.NoError(t, runner.Start(context.Background()))

	svc := service.NewOrderService(newLogger(), store, notifier, runner, 1)

	returned := make(chan entities.Order, 1)
	go func() {
		order, err := svc.CreateOrder(context.Background(), draft)
		assert.NoError(t, err)
		returned <- order
	}()

	select {
	case order := <-returned:
		assert.NotEmpty(t, order.OrderID)
	case <-time.After(2 * time.Second):
		t.Fatal("CreateOrder blocked on deferred work")
	}

	close(release)
	done.Wait()
	require.NoError(t, runner.Close())
}

func TestOrderService_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(store *mocks.MockOrderStore)
		wantLen      int
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().List(mock.Anything, 100).
					Return([]entities.Order{{OrderID: "ORD-2"}, {OrderID: "ORD-1"}}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "store unavailable",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().List(mock.Anything, 100).Return(nil, entities.ErrStoreUnavailable).Once()
			},
			wantErr: entities.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			tc.mockBehavior(store)

			svc := service.NewOrderService(newLogger(), store, mocks.NewMockNotifier(t), mocks.NewMockTaskScheduler(t), 1)

			orders, err := svc.ListOrders(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, tc.wantLen)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	store.EXPECT().Get(mock.Anything, "ORD-1").Return(entities.Order{OrderID: "ORD-1"}, nil).Once()
	store.EXPECT().Get(mock.Anything, "ORD-404").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	svc := service.NewOrderService(newLogger(), store, mocks.NewMockNotifier(t), mocks.NewMockTaskScheduler(t), 1)

	order, err := svc.GetOrder(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.OrderID)

	_, err = svc.GetOrder(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		status       string
		mockBehavior func(store *mocks.MockOrderStore)
		wantErr      error
	}{
		{
			name:   "OK",
			status: "Accept",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().UpdateStatus(mock.Anything, "ORD-1", "Accept").Return(nil).Once()
			},
		},
		{
			name:         "blank status",
			status:       "  ",
			mockBehavior: func(*mocks.MockOrderStore) {},
			wantErr:      entities.ErrStatusRequired,
		},
		{
			name:   "rejected",
			status: "Delivered",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().UpdateStatus(mock.Anything, "ORD-1", "Delivered").Return(entities.ErrUpdateRejected).Once()
			},
			wantErr: entities.ErrUpdateRejected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			tc.mockBehavior(store)

			svc := service.NewOrderService(newLogger(), store, mocks.NewMockNotifier(t), mocks.NewMockTaskScheduler(t), 1)

			err := svc.UpdateOrderStatus(context.Background(), "ORD-1", tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_BulkUpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		ids          []string
		status       string
		concurrency  int
		mockBehavior func(store *mocks.MockOrderStore)
		wantSuccess  []string
		wantFailed   []string
		wantStatus   string
	}{
		{
			name:        "middle id fails",
			ids:         []string{"A", "B", "C"},
			status:      "Delivered",
			concurrency: 1,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().UpdateStatus(mock.Anything, "A", "Delivered").Return(nil).Once()
				store.EXPECT().UpdateStatus(mock.Anything, "B", "Delivered").Return(entities.ErrOrderNotFound).Once()
				store.EXPECT().UpdateStatus(mock.Anything, "C", "Delivered").Return(nil).Once()
			},
			wantSuccess: []string{"A", "C"},
			wantFailed:  []string{"B"},
			wantStatus:  entities.BulkStatusPartialSuccess,
		},
		{
			name:        "parallel keeps input order",
			ids:         []string{"A", "B", "C", "D"},
			status:      "Accept",
			concurrency: 4,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().UpdateStatus(mock.Anything, mock.Anything, "Accept").
					RunAndReturn(func(_ context.Context, id, _ string) error {
						if id == "A" {
							time.Sleep(20 * time.Millisecond)
						}
						if id == "C" {
							return entities.ErrUpdateRejected
						}
						return nil
					}).Times(4)
			},
			wantSuccess: []string{"A", "B", "D"},
			wantFailed:  []string{"C"},
			wantStatus:  entities.BulkStatusPartialSuccess,
		},
		{
			name:        "all succeed",
			ids:         []string{"A", "B"},
			status:      "Accept",
			concurrency: 1,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().UpdateStatus(mock.Anything, mock.Anything, "Accept").Return(nil).Twice()
			},
			wantSuccess: []string{"A", "B"},
			wantFailed:  []string{},
			wantStatus:  entities.BulkStatusSuccess,
		},
		{
			name:         "blank status fails every id",
			ids:          []string{"A", "B"},
			status:       "",
			concurrency:  1,
			mockBehavior: func(*mocks.MockOrderStore) {},
			wantSuccess:  []string{},
			wantFailed:   []string{"A", "B"},
			wantStatus:   entities.BulkStatusPartialSuccess,
		},
		{
			name:         "no ids",
			ids:          nil,
			status:       "Accept",
			concurrency:  1,
			mockBehavior: func(*mocks.MockOrderStore) {},
			wantSuccess:  []string{},
			wantFailed:   []string{},
			wantStatus:   entities.BulkStatusSuccess,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			tc.mockBehavior(store)

			svc := service.NewOrderService(newLogger(), store, mocks.NewMockNotifier(t), mocks.NewMockTaskScheduler(t), tc.concurrency)

			result := svc.BulkUpdateStatus(context.Background(), tc.ids, tc.status)

			assert.Equal(t, tc.wantSuccess, result.Success)
			assert.Equal(t, tc.wantFailed, result.Failed)
			assert.Equal(t, tc.wantStatus, result.Status())
		})
	}
}
