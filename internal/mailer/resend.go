package mailer

import (
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/models"
)

type ResendMailer struct {
	client         *resend.Client
	from           string
	alertRecipient string
	log            *zap.Logger
}

func NewResendMailer(apiKey, from, alertRecipient string, log *zap.Logger) *ResendMailer {
	return &ResendMailer{
		client:         resend.NewClient(apiKey),
		from:           from,
		alertRecipient: alertRecipient,
		log:            log,
	}
}

func (m *ResendMailer) SendBookingConfirmation(b *models.Booking) {
	subject := fmt.Sprintf("Booking Confirmation - %s", b.Service.Name)
	html := fmt.Sprintf(`
		<h1>Booking Confirmed!</h1>
		<p>Dear %s,</p>
		<p>Your booking for <strong>%s</strong> has been confirmed.</p>
		<h2>Booking Details:</h2>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Price:</strong> $%.2f</li>
			<li><strong>Duration:</strong> %d minutes</li>
		</ul>
		<p>Thank you for choosing Handykonnect!</p>`,
		b.Client.FullName,
		b.Service.Name,
		b.Service.Name,
		b.ScheduledAt.Format("Jan 2, 2006 3:04 PM"),
		b.Address,
		b.Service.Price,
		b.Service.DurationMin,
	)

	m.send([]string{b.Client.Email}, subject, html)
}

func (m *ResendMailer) SendBookingStatusUpdate(b *models.Booking) {
	subject := fmt.Sprintf("Booking Update - %s", b.Service.Name)
	html := fmt.Sprintf(`
		<h1>Booking Status Updated</h1>
		<p>Dear %s,</p>
		<p>Your booking status has been updated to: <strong>%s</strong></p>
		<h2>Booking Details:</h2>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Thank you for choosing Handykonnect!</p>`,
		b.Client.FullName,
		b.Status,
		b.Service.Name,
		b.ScheduledAt.Format("Jan 2, 2006 3:04 PM"),
		b.Address,
	)

	m.send([]string{b.Client.Email}, subject, html)
}

func (m *ResendMailer) SendPaymentReceipt(p *models.Payment, b *models.Booking) {
	subject := fmt.Sprintf("Payment Receipt - %s", b.Service.Name)
	html := fmt.Sprintf(`
		<h1>Payment Receipt</h1>
		<p>Dear %s,</p>
		<p>Thank you for your payment. Here are the details:</p>
		<h2>Payment Information:</h2>
		<ul>
			<li><strong>Payment ID:</strong> %d</li>
			<li><strong>Amount:</strong> $%.2f</li>
			<li><strong>Status:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
		</ul>
		<h2>Service Details:</h2>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Scheduled Date:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>This serves as your receipt for this transaction.</p>
		<p>Thank you for choosing Handykonnect!</p>`,
		b.Client.FullName,
		p.ID,
		p.Amount,
		p.Status,
		p.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		b.Service.Name,
		b.ScheduledAt.Format("Jan 2, 2006 3:04 PM"),
		b.Address,
	)

	m.send([]string{b.Client.Email}, subject, html)
}

func (m *ResendMailer) SendTransactionAlert(alert TransactionAlert) {
	kind := "Booking"
	var html string
	if alert.Type == "payment" {
		kind = "Payment"
		html = fmt.Sprintf(`
			<h2>New Payment Transaction</h2>
			<p><strong>Status:</strong> %s</p>
			<p><strong>Amount:</strong> $%.2f</p>
			<p><strong>Customer:</strong> %s (%s)</p>
			<p><strong>Transaction ID:</strong> %s</p>`,
			alert.Status, alert.Amount, alert.CustomerName, alert.CustomerEmail, alert.TransactionID,
		)
	} else {
		html = fmt.Sprintf(`
			<h2>New Booking Transaction</h2>
			<p><strong>Status:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Booking Date:</strong> %s</p>
			<p><strong>Customer:</strong> %s (%s)</p>
			<p><strong>Booking ID:</strong> %s</p>`,
			alert.Status, alert.ServiceName, alert.BookingDate, alert.CustomerName, alert.CustomerEmail, alert.TransactionID,
		)
	}

	subject := fmt.Sprintf("New %s - %s", kind, alert.Status)
	m.send([]string{m.alertRecipient}, subject, html)
}

func (m *ResendMailer) SendAdminInvitation(email, invitedBy string) {
	html := fmt.Sprintf(`
		<h1>You've been invited!</h1>
		<p>%s has invited you to become an administrator on Handykonnect.</p>
		<p>Register with this email address within 7 days and your account
		will be created with admin access.</p>
		<p>If you were not expecting this invitation, you can ignore this email.</p>`,
		invitedBy,
	)

	m.send([]string{email}, "Admin Invitation - Handykonnect", html)
}

// send delivers asynchronously so no caller ever waits on (or fails with)
// the email provider.
func (m *ResendMailer) send(to []string, subject, html string) {
	go func() {
		params := &resend.SendEmailRequest{
			From:    m.from,
			To:      to,
			Subject: subject,
			Html:    html,
		}

		if _, err := m.client.Emails.Send(params); err != nil {
			m.log.Warn("email send failed",
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}
