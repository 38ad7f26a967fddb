package email

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"gopkg.in/gomail.v2"
)

// Client sends portal mail (verification codes, pharmacy alerts, order
// notices) over SMTP via gomail.
type Client struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewFromCentral builds a client from the central config's email section.
func NewFromCentral(cfg config.EmailConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*Client, error) {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	d.SSL = cfg.SMTPUseTLS
	if cfg.SMTPUseTLS {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{cfg: cfg, dialer: d}, nil
}

// Send delivers one message, bounded by the sooner of the config timeout and
// the context deadline. Returns ErrDisabled when mail is turned off so
// callers can treat it as a soft failure.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled {
		return ErrDisabled{}
	}

	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(msg)
	}()

	wait := c.cfg.SMTPTimeout()
	if dl, ok := ctx.Deadline(); ok {
		if until := time.Until(dl); until > 0 && until < wait {
			wait = until
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("Subject", subj)

	for header, addrs := range map[string][]string{"To": m.To, "Cc": m.CC, "Bcc": m.BCC} {
		if cleaned := cleanAddrs(addrs); len(cleaned) > 0 {
			msg.SetHeader(header, cleaned...)
		}
	}

	for k, v := range m.Headers {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k != "" && v != "" {
			msg.SetHeader(k, v)
		}
	}

	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""
	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	case hasHTML:
		msg.SetBody("text/html", m.HTMLBody)
	case hasText:
		msg.SetBody("text/plain", m.TextBody)
	default:
		return nil, ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}

	return msg, nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
