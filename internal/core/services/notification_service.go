package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// mailSender is satisfied by *gomail.Dialer
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// NotificationService mails contact messages to the site inbox
type NotificationService struct {
	sender  mailSender
	from    string
	inbox   string
	enabled bool
	logger  zerolog.Logger
}

// NewNotificationService creates a new notification service. It is disabled
// when no SMTP host or inbox is configured.
func NewNotificationService(cfg config.MailConfig, logger zerolog.Logger) *NotificationService {
	var sender mailSender
	if cfg.Enabled() {
		sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return newNotificationService(sender, cfg.From, cfg.Inbox, logger)
}

func newNotificationService(sender mailSender, from, inbox string, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		sender:  sender,
		from:    from,
		inbox:   inbox,
		enabled: sender != nil && inbox != "",
		logger:  logger.With().Str("service", "notification").Logger(),
	}
}

// Enabled checks if notification is enabled
func (s *NotificationService) Enabled() bool {
	return s.enabled
}

// NotifyContact sends a contact message to the inbox with Reply-To set to the sender
func (s *NotificationService) NotifyContact(ctx context.Context, msg domain.ContactMessage) error {
	if !s.enabled {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.inbox)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", contactSubject(msg))
	m.SetBody("text/plain", contactText(msg))
	m.AddAlternative("text/html", contactHTML(msg))

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	s.logger.Info().Str("contact_id", msg.ID).Msg("contact notification sent")
	return nil
}

func contactSubject(msg domain.ContactMessage) string {
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "New message"
	}
	return "[Contact] " + subject
}

func contactText(msg domain.ContactMessage) string {
	return fmt.Sprintf("From: %s <%s>\nReceived: %s\n\n%s\n",
		msg.Name,
		msg.Email,
		msg.CreatedAt.UTC().Format("2006-01-02 15:04 MST"),
		msg.Message,
	)
}

func contactHTML(msg domain.ContactMessage) string {
	body := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")
	return fmt.Sprintf(`<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Received:</strong> %s</p><p>%s</p>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		msg.CreatedAt.UTC().Format("2006-01-02 15:04 MST"),
		body,
	)
}
