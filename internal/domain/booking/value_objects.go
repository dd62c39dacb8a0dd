package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDate       = errors.New("invalid appointment date")
	ErrDateOutsideWindow = errors.New("appointment date outside the booking window")
	ErrInvalidTime       = errors.New("invalid appointment time")
	ErrTimeOffGrid       = errors.New("appointment time is not on the slot grid")
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrNameTooLong       = errors.New("customer name too long")
	ErrInvalidPhone      = errors.New("invalid mobile phone number")
	ErrNotesTooLong      = errors.New("notes too long")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

const (
	// Slots run every 30 minutes from 09:00 through 20:30 (24 per day).
	gridOpenHour  = 9
	gridCloseHour = 20
	slotMinutes   = 30

	// Bookings are accepted for today through 29 days ahead.
	BookingWindowDays = 30

	MaxNameLength  = 100
	MaxNotesLength = 500

	dateLayout = "2006-01-02"
)

// Mainland-mobile format, same rule the booking form enforces.
var phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay parses "HH:MM" or "HH:MM:SS" (seconds are dropped) and
// requires the result to sit on the 30-minute slot grid.
func NewTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}

	tod := TimeOfDay{hour: parsed.Hour(), minute: parsed.Minute()}
	if !tod.onGrid() {
		return TimeOfDay{}, ErrTimeOffGrid
	}
	return tod, nil
}

func (t TimeOfDay) onGrid() bool {
	if t.minute != 0 && t.minute != slotMinutes {
		return false
	}
	return t.hour >= gridOpenHour && t.hour <= gridCloseHour
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.hour != other.hour {
		return t.hour < other.hour
	}
	return t.minute < other.minute
}

// SlotGrid returns every bookable time of a day, in order.
func SlotGrid() []TimeOfDay {
	slots := make([]TimeOfDay, 0, (gridCloseHour-gridOpenHour+1)*2)
	for hour := gridOpenHour; hour <= gridCloseHour; hour++ {
		slots = append(slots, TimeOfDay{hour: hour}, TimeOfDay{hour: hour, minute: slotMinutes})
	}
	return slots
}

type AppointmentDate struct {
	value time.Time
}

// NewAppointmentDate parses "YYYY-MM-DD". Window validation is separate
// because reads (availability, lookups) accept any date.
func NewAppointmentDate(s string) (AppointmentDate, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return AppointmentDate{}, ErrInvalidDate
	}
	return AppointmentDate{value: parsed}, nil
}

// ValidateWindow rejects dates before today or more than 29 days ahead.
func (d AppointmentDate) ValidateWindow(now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	last := today.AddDate(0, 0, BookingWindowDays-1)
	if d.value.Before(today) || d.value.After(last) {
		return ErrDateOutsideWindow
	}
	return nil
}

func (d AppointmentDate) Time() time.Time { return d.value }

func (d AppointmentDate) String() string {
	return d.value.Format(dateLayout)
}

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CustomerName{}, ErrEmptyCustomerName
	}
	if len(s) > MaxNameLength {
		return CustomerName{}, ErrNameTooLong
	}
	return CustomerName{value: s}, nil
}

func (n CustomerName) String() string {
	return n.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
