package analytics

import (
	"context"
	"sort"
	"time"

	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	paymentdomain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/timezone"
)

const (
	fetchLimit     = 200
	trailingMonths = 6
)

// ======================================================
// OUTPUT
// ======================================================

type MonthlyPoint struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type Summary struct {
	TotalRevenue     float64        `json:"total_revenue"`
	TotalBookings    int            `json:"total_bookings"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`
	Monthly          []MonthlyPoint `json:"monthly"`
}

// ======================================================
// USE CASE
// ======================================================

// Summarize recomputes the admin dashboard rollup from scratch on every
// call: bounded recent rows, grouped in memory. Revenue counts completed
// payments only; pending, failed and refunded amounts never contribute.
type Summarize struct {
	bookings bookingdomain.Repository
	payments paymentdomain.Repository
	tz       string
}

func NewSummarize(
	bookings bookingdomain.Repository,
	payments paymentdomain.Repository,
	tz string,
) *Summarize {
	return &Summarize{
		bookings: bookings,
		payments: payments,
		tz:       tz,
	}
}

func (uc *Summarize) Execute(ctx context.Context) (*Summary, error) {
	bookings, err := uc.bookings.ListBookings(ctx, fetchLimit)
	if err != nil {
		return nil, err
	}

	payments, err := uc.payments.ListPayments(ctx, fetchLimit)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.tz)

	byStatus := make(map[string]int)
	monthly := make(map[string]*MonthlyPoint)

	monthKey := func(t time.Time) string {
		return t.In(loc).Format("Jan 2006")
	}

	for i := range bookings {
		b := &bookings[i]
		byStatus[b.Status]++

		key := monthKey(b.CreatedAt)
		point, ok := monthly[key]
		if !ok {
			point = &MonthlyPoint{Month: key}
			monthly[key] = point
		}
		point.Bookings++
	}

	var totalRevenue float64
	for i := range payments {
		p := &payments[i]
		if paymentdomain.Status(p.Status) != paymentdomain.StatusCompleted {
			continue
		}

		totalRevenue += p.Amount

		key := monthKey(p.CreatedAt)
		point, ok := monthly[key]
		if !ok {
			point = &MonthlyPoint{Month: key}
			monthly[key] = point
		}
		point.Revenue += p.Amount
	}

	points := make([]MonthlyPoint, 0, len(monthly))
	for _, p := range monthly {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		ti, _ := time.ParseInLocation("Jan 2006", points[i].Month, loc)
		tj, _ := time.ParseInLocation("Jan 2006", points[j].Month, loc)
		return ti.Before(tj)
	})
	if len(points) > trailingMonths {
		points = points[len(points)-trailingMonths:]
	}

	return &Summary{
		TotalRevenue:     totalRevenue,
		TotalBookings:    len(bookings),
		BookingsByStatus: byStatus,
		Monthly:          points,
	}, nil
}
