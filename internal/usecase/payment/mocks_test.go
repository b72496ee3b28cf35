package payment_test

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/audit"
	paymentdomain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
	"github.com/handykonnect/handykonnect-api/internal/processor"
)

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

// ------------------------------------------------------
// Repository mock
// ------------------------------------------------------

type repoMock struct {
	payments map[uint]*models.Payment
	bookings map[uint]*models.Booking
	nextID   uint
}

func newRepoMock() *repoMock {
	return &repoMock{
		payments: make(map[uint]*models.Payment),
		bookings: make(map[uint]*models.Booking),
		nextID:   1,
	}
}

func (m *repoMock) addBooking(b *models.Booking) *models.Booking {
	m.bookings[b.ID] = b
	return b
}

func (m *repoMock) addPayment(p *models.Payment) *models.Payment {
	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	}
	m.payments[p.ID] = p
	return p
}

func (m *repoMock) Transact(ctx context.Context, fn func(paymentdomain.Repository) error) error {
	return fn(m)
}

func (m *repoMock) CreatePayment(ctx context.Context, p *models.Payment) error {
	m.addPayment(p)
	return nil
}

func (m *repoMock) GetPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	p, ok := m.payments[paymentID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *p
	return &cp, nil
}

func (m *repoMock) GetPaymentByRefForUpdate(ctx context.Context, ref string) (*models.Payment, error) {
	for _, p := range m.payments {
		if p.ProcessorRef == ref {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *repoMock) UpdatePayment(ctx context.Context, p *models.Payment) error {
	if _, ok := m.payments[p.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *repoMock) HasCompletedPayment(ctx context.Context, bookingID uint) (bool, error) {
	for _, p := range m.payments {
		if p.BookingID == bookingID && p.Status == string(paymentdomain.StatusCompleted) {
			return true, nil
		}
	}
	return false, nil
}

func (m *repoMock) ListPaymentsForClient(ctx context.Context, clientID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if b, ok := m.bookings[p.BookingID]; ok && b.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *repoMock) ListPayments(ctx context.Context, limit int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (m *repoMock) GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *b
	return &cp, nil
}

func (m *repoMock) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if _, ok := m.bookings[b.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

var _ paymentdomain.Repository = (*repoMock)(nil)

// ------------------------------------------------------
// Processor mock
// ------------------------------------------------------

type processorMock struct {
	intentStatus processor.IntentStatus
	createErr    error
	refundErr    error

	createdAmounts []int64
	refundedRefs   []string
}

func (m *processorMock) CreateIntent(ctx context.Context, amountCents int64, currency string) (*processor.Intent, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdAmounts = append(m.createdAmounts, amountCents)
	id := fmt.Sprintf("pi_%d", len(m.createdAmounts))
	return &processor.Intent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (m *processorMock) RetrieveIntent(ctx context.Context, intentID string) (processor.IntentStatus, error) {
	return m.intentStatus, nil
}

func (m *processorMock) Refund(ctx context.Context, intentID string) (*processor.RefundResult, error) {
	if m.refundErr != nil {
		return nil, m.refundErr
	}
	m.refundedRefs = append(m.refundedRefs, intentID)
	return &processor.RefundResult{ID: "re_1", Status: "succeeded"}, nil
}

var _ processor.PaymentProcessor = (*processorMock)(nil)

// ------------------------------------------------------
// Mailer mock
// ------------------------------------------------------

type mailerMock struct {
	confirmations int
	statusUpdates int
	receipts      int
	alerts        []mailer.TransactionAlert
	invitations   []string
}

func (m *mailerMock) SendBookingConfirmation(b *models.Booking)               { m.confirmations++ }
func (m *mailerMock) SendBookingStatusUpdate(b *models.Booking)               { m.statusUpdates++ }
func (m *mailerMock) SendPaymentReceipt(p *models.Payment, b *models.Booking) { m.receipts++ }
func (m *mailerMock) SendTransactionAlert(alert mailer.TransactionAlert) {
	m.alerts = append(m.alerts, alert)
}
func (m *mailerMock) SendAdminInvitation(email, invitedBy string) {
	m.invitations = append(m.invitations, email)
}

var _ mailer.Mailer = (*mailerMock)(nil)

// ------------------------------------------------------
// Events mock
// ------------------------------------------------------

type publisherMock struct {
	changes []events.Change
}

func (m *publisherMock) Publish(change events.Change) {
	m.changes = append(m.changes, change)
}

func (m *publisherMock) forTable(table string) []events.Change {
	var out []events.Change
	for _, c := range m.changes {
		if c.Table == table {
			out = append(out, c)
		}
	}
	return out
}

var _ events.Publisher = (*publisherMock)(nil)
