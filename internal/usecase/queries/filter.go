package queries

import (
	"sort"
	"strings"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"
)

var (
	ErrInvalidStatusFilter = errs.New("invalid status filter")
	ErrInvalidSortKey      = errs.New("invalid sort key")
	ErrInvalidSortOrder    = errs.New("invalid sort order")
)

type SortKey string

const (
	SortByAppointment SortKey = "date"
	SortByStatus      SortKey = "status"
	SortByCreated     SortKey = "created"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// ListFilter narrows and orders a booking collection. Phone matches by
// substring, status by exact value; both conditions must hold.
type ListFilter struct {
	Phone  string
	Status string
	SortBy SortKey
	Order  SortOrder
}

// NewListFilter validates raw query parameters. Empty values fall back to
// defaults: no filtering, sorted by appointment ascending.
func NewListFilter(phone, status, sortBy, order string) (ListFilter, error) {
	status = strings.TrimSpace(status)
	if status != "" && status != StatusFilterAll {
		if _, err := booking.NewStatus(status); err != nil {
			return ListFilter{}, ErrInvalidStatusFilter
		}
	}

	key := SortKey(strings.TrimSpace(sortBy))
	switch key {
	case "", SortByAppointment, SortByStatus, SortByCreated:
	default:
		return ListFilter{}, ErrInvalidSortKey
	}

	ord := SortOrder(strings.TrimSpace(order))
	switch ord {
	case "", OrderAsc, OrderDesc:
	default:
		return ListFilter{}, ErrInvalidSortOrder
	}

	return ListFilter{
		Phone:  strings.TrimSpace(phone),
		Status: status,
		SortBy: key,
		Order:  ord,
	}, nil
}

// Apply is a pure function over the input slice: it filters, then sorts a
// copy, leaving the original untouched. The sort is stable so equal keys
// keep store iteration order.
func (f ListFilter) Apply(items []*BookingView) []*BookingView {
	result := make([]*BookingView, 0, len(items))
	for _, item := range items {
		if f.matches(item) {
			result = append(result, item)
		}
	}

	sortKey := f.SortBy
	if sortKey == "" {
		sortKey = SortByAppointment
	}
	desc := f.Order == OrderDesc

	sort.SliceStable(result, func(i, j int) bool {
		less := lessBy(sortKey, result[i], result[j])
		if desc {
			return lessBy(sortKey, result[j], result[i])
		}
		return less
	})

	return result
}

func (f ListFilter) matches(v *BookingView) bool {
	if f.Phone != "" && !strings.Contains(v.CustomerPhone, f.Phone) {
		return false
	}
	if f.Status != "" && f.Status != StatusFilterAll && v.Status != f.Status {
		return false
	}
	return true
}

func lessBy(key SortKey, a, b *BookingView) bool {
	switch key {
	case SortByStatus:
		return a.Status < b.Status
	case SortByCreated:
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		// ISO date + HH:MM concatenation compares chronologically.
		return appointmentKey(a) < appointmentKey(b)
	}
}

func appointmentKey(v *BookingView) string {
	return v.AppointmentDate + " " + v.AppointmentTime
}
