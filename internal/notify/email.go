package notify

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/order-intake/internal/config"
	"github.com/wneessen/go-mail"
)

const implicitTLSPort = 465

// Mail is a rendered message ready to be sent.
type Mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSession is one authenticated SMTP connection. Several mails may be sent
// over it before Close.
type EmailSession interface {
	Send(ctx context.Context, m Mail) error
	Close() error
}

type EmailTransport interface {
	Dial(ctx context.Context) (EmailSession, error)
}

type smtpTransport struct {
	cfg config.SMTP
}

func NewSMTPTransport(cfg config.SMTP) *smtpTransport {
	return &smtpTransport{cfg: cfg}
}

func (t *smtpTransport) Dial(ctx context.Context) (EmailSession, error) {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.Username),
		mail.WithPassword(t.cfg.Password),
	}
	if t.cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if t.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(t.cfg.Timeout))
	}

	client, err := mail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("dial smtp %s:%d: %w", t.cfg.Host, t.cfg.Port, err)
	}

	return &smtpSession{client: client, from: t.cfg.Sender()}, nil
}

type smtpSession struct {
	client *mail.Client
	from   string
}

func (s *smtpSession) Send(_ context.Context, m Mail) error {
	msg, err := buildMessage(s.from, m)
	if err != nil {
		return err
	}
	if err := s.client.Send(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}

func (s *smtpSession) Close() error {
	return s.client.Close()
}

func buildMessage(from string, m Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTML)
	if m.Text != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, m.Text)
	}
	return msg, nil
}
