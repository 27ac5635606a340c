package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	mocks "github.com/SergeyBogomolovv/order-intake/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_HandleCreateOrder(t *testing.T) {
	valid := `{"customer_name":"Asha","customer_email":"asha@example.com","phone":"1","address":"Pune",` +
		`"products":[{"product_id":1,"name":"Ghee","quantity":1,"price":450}],"total_amount":450,"payment_method":"cod"}`

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(creator *mocks.MockOrderCreator)
		wantErr      bool
	}{
		{
			name:  "accepted",
			value: valid,
			mockBehavior: func(creator *mocks.MockOrderCreator) {
				creator.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(d entities.OrderDraft) bool {
					return d.PaymentMethod == entities.PaymentCOD && len(d.Products) == 1
				})).Return(entities.Order{OrderID: "ORD-1"}, nil).Once()
			},
		},
		{
			name:         "not json",
			value:        `order please`,
			mockBehavior: func(*mocks.MockOrderCreator) {},
			wantErr:      true,
		},
		{
			name:         "invalid request",
			value:        `{"customer_name":"Asha"}`,
			mockBehavior: func(*mocks.MockOrderCreator) {},
			wantErr:      true,
		},
		{
			name:  "service error",
			value: valid,
			mockBehavior: func(creator *mocks.MockOrderCreator) {
				creator.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockOrderCreator(t)
			tc.mockBehavior(creator)

			h := &kafkaHandler{
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: validator.New(),
				creator:  creator,
			}

			err := h.handleCreateOrder(context.Background(), kafka.Message{Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
