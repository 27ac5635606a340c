package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/order-intake/internal/config"
	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type EmailFlagUpdater interface {
	UpdateEmailFlag(ctx context.Context, orderID string, sent bool) error
}

type dispatcher struct {
	logger    *slog.Logger
	smtp      config.SMTP
	chat      config.Chat
	transport EmailTransport
	messages  MessageAPI
	flags     EmailFlagUpdater
}

func NewDispatcher(
	logger *slog.Logger,
	smtp config.SMTP,
	chat config.Chat,
	transport EmailTransport,
	messages MessageAPI,
	flags EmailFlagUpdater,
) *dispatcher {
	return &dispatcher{
		logger:    logger.With(slog.String("notify", "dispatcher")),
		smtp:      smtp,
		chat:      chat,
		transport: transport,
		messages:  messages,
		flags:     flags,
	}
}

// SendOrderEmails sends the customer confirmation and the admin alert over one
// SMTP session and records the outcome in the email_sent flag. Errors are
// logged, never returned.
func (d *dispatcher) SendOrderEmails(ctx context.Context, order entities.Order) {
	if !d.smtp.Configured() || d.transport == nil {
		notificationsTotal.WithLabelValues(channelEmail, outcomeSkipped).Inc()
		d.logger.DebugContext(ctx, "smtp is not configured, skipping emails", slog.String("order_id", order.OrderID))
		return
	}

	if err := d.sendEmails(ctx, order); err != nil {
		notificationsTotal.WithLabelValues(channelEmail, outcomeFailed).Inc()
		d.logger.ErrorContext(ctx, "failed to send order emails",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
		d.setEmailFlag(ctx, order.OrderID, false)
		return
	}

	notificationsTotal.WithLabelValues(channelEmail, outcomeSent).Inc()
}

func (d *dispatcher) sendEmails(ctx context.Context, order entities.Order) error {
	customer, err := renderCustomerMail(order)
	if err != nil {
		return fmt.Errorf("render customer mail: %w", err)
	}

	session, err := d.transport.Dial(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			d.logger.WarnContext(ctx, "failed to close smtp session", slog.Any("error", err))
		}
	}()

	if err := session.Send(ctx, customer); err != nil {
		return fmt.Errorf("customer confirmation: %w", err)
	}
	d.logger.InfoContext(ctx, "customer confirmation sent", slog.String("order_id", order.OrderID))
	d.setEmailFlag(ctx, order.OrderID, true)

	if d.smtp.AdminEmail == "" {
		return nil
	}

	admin, err := renderAdminMail(d.smtp.AdminEmail, order)
	if err != nil {
		return fmt.Errorf("render admin mail: %w", err)
	}
	// Ошибка здесь сбрасывает email_sent обратно в false, хотя клиент письмо получил
	if err := session.Send(ctx, admin); err != nil {
		return fmt.Errorf("admin alert: %w", err)
	}
	return nil
}

func (d *dispatcher) setEmailFlag(ctx context.Context, orderID string, sent bool) {
	if err := d.flags.UpdateEmailFlag(ctx, orderID, sent); err != nil {
		d.logger.WarnContext(ctx, "failed to update email flag",
			slog.String("order_id", orderID), slog.Bool("sent", sent), slog.Any("error", err))
	}
}

// SendAdminChat sends the WhatsApp alert to the admin and returns the message
// SID, or an empty string when the message was skipped or failed.
func (d *dispatcher) SendAdminChat(ctx context.Context, order entities.Order) string {
	if !d.chat.Configured() || d.messages == nil {
		notificationsTotal.WithLabelValues(channelChat, outcomeSkipped).Inc()
		d.logger.DebugContext(ctx, "chat is not configured, skipping admin message", slog.String("order_id", order.OrderID))
		return ""
	}

	params, err := d.chatParams(order)
	if err != nil {
		notificationsTotal.WithLabelValues(channelChat, outcomeFailed).Inc()
		d.logger.ErrorContext(ctx, "failed to build chat message", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return ""
	}

	msg, err := d.messages.CreateMessage(params)
	if err != nil {
		notificationsTotal.WithLabelValues(channelChat, outcomeFailed).Inc()
		d.logger.ErrorContext(ctx, "failed to send chat message", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return ""
	}

	notificationsTotal.WithLabelValues(channelChat, outcomeSent).Inc()

	var sid string
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	d.logger.InfoContext(ctx, "admin chat message sent", slog.String("order_id", order.OrderID), slog.String("sid", sid))
	return sid
}

func (d *dispatcher) chatParams(order entities.Order) (*twilioApi.CreateMessageParams, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(whatsappAddress(d.chat.FromNumber))
	params.SetTo(whatsappAddress(d.chat.AdminNumber))

	if d.chat.ContentSID != "" {
		vars, err := json.Marshal(map[string]string{
			"1": order.OrderID,
			"2": order.CustomerName,
			"3": money(order.TotalAmount),
			"4": paymentLabel(order.PaymentMethod),
		})
		if err != nil {
			return nil, err
		}
		params.SetContentSid(d.chat.ContentSID)
		params.SetContentVariables(string(vars))
		return params, nil
	}

	body, err := renderChatText(order)
	if err != nil {
		return nil, fmt.Errorf("render chat text: %w", err)
	}
	params.SetBody(body)
	return params, nil
}
