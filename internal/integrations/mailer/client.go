package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Client почтовый коллаборатор. Отправляет письма клиенту и администратору
// через SMTP без аутентификации (совместимо с Mailpit и большинством релеев).
//
// Все отправки ограничены собственным таймаутом клиента: письмо — это
// best-effort side effect после успешной записи, оно не должно ни
// откатывать бронирование, ни задерживать ответ.
type Client struct {
	host       string
	addr       string
	from       string
	adminEmail string
	timeout    time.Duration
	log        Logger
}

// NewClient создает SMTP клиент
func NewClient(host string, port int, from, adminEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		host:       host,
		addr:       fmt.Sprintf("%s:%d", host, port),
		from:       from,
		adminEmail: adminEmail,
		timeout:    timeout,
		log:        log,
	}
}

// SendBookingConfirmation отправляет клиенту подтверждение приёма заявки
func (c *Client) SendBookingConfirmation(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error {
	subject := fmt.Sprintf("Appointment Confirmation - %s", svc.Name)
	body := confirmationBody(appt, svc)
	return c.send(ctx, appt.CustomerEmail, subject, body)
}

// SendAdminNotification уведомляет администратора о новой заявке
func (c *Client) SendAdminNotification(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error {
	subject := fmt.Sprintf("New Appointment Booking - %s", svc.Name)
	body := adminNotificationBody(appt, svc)
	return c.send(ctx, c.adminEmail, subject, body)
}

// SendApproval отправляет клиенту письмо о подтверждении встречи
// со ссылкой на видеоконференцию
func (c *Client) SendApproval(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error {
	subject := fmt.Sprintf("Appointment Confirmed - %s", svc.Name)
	body := approvalBody(appt, svc)
	return c.send(ctx, appt.CustomerEmail, subject, body)
}

// SendDecline отправляет клиенту письмо об отклонении встречи
func (c *Client) SendDecline(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error {
	subject := fmt.Sprintf("Appointment Could Not Be Confirmed - %s", svc.Name)
	body := declineBody(appt, svc)
	return c.send(ctx, appt.CustomerEmail, subject, body)
}

// send выполняет SMTP-диалог с таймаутом на соединение и на весь обмен
func (c *Client) send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("%w: empty recipient", ErrSendFailed)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrSendFailed, c.addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("%w: set deadline: %v", ErrSendFailed, err)
	}

	client, err := smtp.NewClient(conn, c.host)
	if err != nil {
		return fmt.Errorf("%w: smtp handshake: %v", ErrSendFailed, err)
	}
	defer client.Close()

	if err := client.Mail(c.from); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrSendFailed, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%w: RCPT TO: %v", ErrSendFailed, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrSendFailed, err)
	}
	if _, err := w.Write([]byte(buildMessage(c.from, to, subject, body))); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSendFailed, err)
	}

	if err := client.Quit(); err != nil {
		c.log.Warn("mailer: QUIT failed after successful send to %s: %v", to, err)
	}

	c.log.Info("mailer: sent %q to %s", subject, to)
	return nil
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body)
}
