package booking_test

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/audit"
	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

// ------------------------------------------------------
// Repository mock
// ------------------------------------------------------

type repoMock struct {
	services map[uint]*models.Service
	bookings map[uint]*models.Booking
	nextID   uint
}

func newRepoMock() *repoMock {
	return &repoMock{
		services: make(map[uint]*models.Service),
		bookings: make(map[uint]*models.Booking),
		nextID:   1,
	}
}

func (m *repoMock) addService(s *models.Service) *models.Service {
	m.services[s.ID] = s
	return s
}

func (m *repoMock) addBooking(b *models.Booking) *models.Booking {
	if b.ID == 0 {
		b.ID = m.nextID
		m.nextID++
	}
	m.bookings[b.ID] = b
	return b
}

func (m *repoMock) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	s, ok := m.services[serviceID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *s
	return &cp, nil
}

func (m *repoMock) CreateBooking(ctx context.Context, b *models.Booking) error {
	m.addBooking(b)
	return nil
}

func (m *repoMock) GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *b
	if s, ok := m.services[b.ServiceID]; ok {
		cp.Service = *s
	}
	return &cp, nil
}

func (m *repoMock) GetBookingForClient(ctx context.Context, bookingID, clientID uint) (*models.Booking, error) {
	b, err := m.GetBooking(ctx, bookingID)
	if err != nil || b.ClientID != clientID {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (m *repoMock) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if _, ok := m.bookings[b.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *repoMock) ListBookingsForClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *repoMock) ListBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		out = append(out, *b)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ bookingdomain.Repository = (*repoMock)(nil)

// ------------------------------------------------------
// Mailer / events mocks
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

type publisherMock struct {
	changes []events.Change
}

func (m *publisherMock) Publish(change events.Change) {
	m.changes = append(m.changes, change)
}

var _ events.Publisher = (*publisherMock)(nil)
