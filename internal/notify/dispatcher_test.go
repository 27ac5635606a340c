package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/order-intake/internal/config"
	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/SergeyBogomolovv/order-intake/internal/notify"
	mocks "github.com/SergeyBogomolovv/order-intake/internal/notify/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	smtpConfig = config.SMTP{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "shop@example.com",
		Password:   "pass",
		AdminEmail: "admin@example.com",
	}
	chatConfig = config.Chat{
		AccountSID:  "AC123",
		AuthToken:   "token",
		FromNumber:  "+14155238886",
		AdminNumber: "+919000000000",
	}
)

func testOrder() entities.Order {
	order := entities.NewOrder(entities.OrderDraft{
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		Phone:         "+919000000000",
		Address:       "12 MG Road, Pune",
		Products: []entities.OrderItem{
			{ProductID: 1, Name: "A2 Ghee", Quantity: 2, Price: decimal.RequireFromString("450")},
		},
		TotalAmount:   decimal.RequireFromString("900"),
		PaymentMethod: entities.PaymentUPI,
	})
	return order
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isTo(addr string) any {
	return mock.MatchedBy(func(m notify.Mail) bool { return m.To == addr })
}

func TestDispatcher_SendOrderEmails(t *testing.T) {
	order := testOrder()
	sendErr := errors.New("smtp 554")

	type MockBehavior func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater)

	testCases := []struct {
		name         string
		smtp         config.SMTP
		mockBehavior MockBehavior
	}{
		{
			name: "both mails sent",
			smtp: smtpConfig,
			mockBehavior: func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater) {
				transport.EXPECT().Dial(mock.Anything).Return(session, nil).Once()
				customer := session.EXPECT().Send(mock.Anything, isTo(order.CustomerEmail)).Return(nil).Once()
				flag := flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, true).Return(nil).Once().NotBefore(customer)
				session.EXPECT().Send(mock.Anything, isTo(smtpConfig.AdminEmail)).Return(nil).Once().NotBefore(flag)
				session.EXPECT().Close().Return(nil).Once()
			},
		},
		{
			name: "no admin address sends only confirmation",
			smtp: func() config.SMTP { c := smtpConfig; c.AdminEmail = ""; return c }(),
			mockBehavior: func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater) {
				transport.EXPECT().Dial(mock.Anything).Return(session, nil).Once()
				session.EXPECT().Send(mock.Anything, isTo(order.CustomerEmail)).Return(nil).Once()
				flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, true).Return(nil).Once()
				session.EXPECT().Close().Return(nil).Once()
			},
		},
		{
			name: "dial fails",
			smtp: smtpConfig,
			mockBehavior: func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater) {
				transport.EXPECT().Dial(mock.Anything).Return(nil, errors.New("connection refused")).Once()
				flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, false).Return(nil).Once()
			},
		},
		{
			name: "customer mail fails",
			smtp: smtpConfig,
			mockBehavior: func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater) {
				transport.EXPECT().Dial(mock.Anything).Return(session, nil).Once()
				session.EXPECT().Send(mock.Anything, isTo(order.CustomerEmail)).Return(sendErr).Once()
				flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, false).Return(nil).Once()
				session.EXPECT().Close().Return(nil).Once()
			},
		},
		{
			name: "admin mail failure resets flag",
			smtp: smtpConfig,
			mockBehavior: func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater) {
				transport.EXPECT().Dial(mock.Anything).Return(session, nil).Once()
				session.EXPECT().Send(mock.Anything, isTo(order.CustomerEmail)).Return(nil).Once()
				set := flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, true).Return(nil).Once()
				session.EXPECT().Send(mock.Anything, isTo(smtpConfig.AdminEmail)).Return(sendErr).Once()
				flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, false).Return(nil).Once().NotBefore(set)
				session.EXPECT().Close().Return(nil).Once()
			},
		},
		{
			name: "flag update failure is swallowed",
			smtp: smtpConfig,
			mockBehavior: func(transport *mocks.MockEmailTransport, session *mocks.MockEmailSession, flags *mocks.MockEmailFlagUpdater) {
				transport.EXPECT().Dial(mock.Anything).Return(session, nil).Once()
				session.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Twice()
				flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, true).Return(entities.ErrStoreUnavailable).Once()
				session.EXPECT().Close().Return(errors.New("quit failed")).Once()
			},
		},
		{
			name:         "smtp not configured",
			smtp:         config.SMTP{Port: 587},
			mockBehavior: func(*mocks.MockEmailTransport, *mocks.MockEmailSession, *mocks.MockEmailFlagUpdater) {},
		},
		{
			name:         "smtp password missing",
			smtp:         func() config.SMTP { c := smtpConfig; c.Password = ""; return c }(),
			mockBehavior: func(*mocks.MockEmailTransport, *mocks.MockEmailSession, *mocks.MockEmailFlagUpdater) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := mocks.NewMockEmailTransport(t)
			session := mocks.NewMockEmailSession(t)
			flags := mocks.NewMockEmailFlagUpdater(t)
			tc.mockBehavior(transport, session, flags)

			d := notify.NewDispatcher(discardLogger(), tc.smtp, config.Chat{}, transport, nil, flags)

			assert.NotPanics(t, func() {
				d.SendOrderEmails(context.Background(), order)
			})
		})
	}
}

func TestDispatcher_SendOrderEmails_Content(t *testing.T) {
	order := testOrder()

	transport := mocks.NewMockEmailTransport(t)
	session := mocks.NewMockEmailSession(t)
	flags := mocks.NewMockEmailFlagUpdater(t)

	var sent []notify.Mail
	transport.EXPECT().Dial(mock.Anything).Return(session, nil).Once()
	session.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, m notify.Mail) { sent = append(sent, m) }).
		Return(nil).Twice()
	session.EXPECT().Close().Return(nil).Once()
	flags.EXPECT().UpdateEmailFlag(mock.Anything, order.OrderID, true).Return(nil).Once()

	d := notify.NewDispatcher(discardLogger(), smtpConfig, config.Chat{}, transport, nil, flags)
	d.SendOrderEmails(context.Background(), order)

	require.Len(t, sent, 2)

	customer := sent[0]
	assert.Equal(t, order.CustomerEmail, customer.To)
	assert.Contains(t, customer.Subject, order.OrderID)
	assert.Contains(t, customer.HTML, "A2 Ghee")
	assert.Contains(t, customer.HTML, "₹900.00")

	admin := sent[1]
	assert.Equal(t, smtpConfig.AdminEmail, admin.To)
	assert.Contains(t, admin.HTML, order.CustomerEmail)
	assert.Contains(t, admin.Text, "A2 Ghee x 2 @ ₹450.00 = ₹900.00")
	assert.Contains(t, admin.Text, "Payment: UPI")
}

func TestDispatcher_SendAdminChat(t *testing.T) {
	order := testOrder()
	sid := "SM0001"

	testCases := []struct {
		name         string
		chat         config.Chat
		mockBehavior func(api *mocks.MockMessageAPI)
		wantSID      string
	}{
		{
			name: "text body",
			chat: chatConfig,
			mockBehavior: func(api *mocks.MockMessageAPI) {
				api.EXPECT().CreateMessage(mock.MatchedBy(func(p *twilioApi.CreateMessageParams) bool {
					return *p.From == "whatsapp:+14155238886" &&
						*p.To == "whatsapp:+919000000000" &&
						p.Body != nil && strings.Contains(*p.Body, order.OrderID) &&
						p.ContentSid == nil
				})).Return(&twilioApi.ApiV2010Message{Sid: &sid}, nil).Once()
			},
			wantSID: sid,
		},
		{
			name: "content template",
			chat: func() config.Chat { c := chatConfig; c.ContentSID = "HX42"; return c }(),
			mockBehavior: func(api *mocks.MockMessageAPI) {
				api.EXPECT().CreateMessage(mock.MatchedBy(func(p *twilioApi.CreateMessageParams) bool {
					if p.ContentSid == nil || *p.ContentSid != "HX42" || p.Body != nil || p.ContentVariables == nil {
						return false
					}
					var vars map[string]string
					if err := json.Unmarshal([]byte(*p.ContentVariables), &vars); err != nil {
						return false
					}
					return vars["1"] == order.OrderID && vars["3"] == "₹900.00"
				})).Return(&twilioApi.ApiV2010Message{Sid: &sid}, nil).Once()
			},
			wantSID: sid,
		},
		{
			name: "already prefixed numbers",
			chat: func() config.Chat { c := chatConfig; c.FromNumber = "whatsapp:+1000"; return c }(),
			mockBehavior: func(api *mocks.MockMessageAPI) {
				api.EXPECT().CreateMessage(mock.MatchedBy(func(p *twilioApi.CreateMessageParams) bool {
					return *p.From == "whatsapp:+1000"
				})).Return(&twilioApi.ApiV2010Message{}, nil).Once()
			},
			wantSID: "",
		},
		{
			name: "provider error",
			chat: chatConfig,
			mockBehavior: func(api *mocks.MockMessageAPI) {
				api.EXPECT().CreateMessage(mock.Anything).Return(nil, errors.New("status 401")).Once()
			},
			wantSID: "",
		},
		{
			name:         "sender number missing",
			chat:         func() config.Chat { c := chatConfig; c.FromNumber = ""; return c }(),
			mockBehavior: func(*mocks.MockMessageAPI) {},
			wantSID:      "",
		},
		{
			name:         "not configured",
			chat:         config.Chat{},
			mockBehavior: func(*mocks.MockMessageAPI) {},
			wantSID:      "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockMessageAPI(t)
			tc.mockBehavior(api)

			d := notify.NewDispatcher(discardLogger(), config.SMTP{}, tc.chat, nil, api, nil)

			assert.Equal(t, tc.wantSID, d.SendAdminChat(context.Background(), order))
		})
	}
}
