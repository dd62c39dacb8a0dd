package repository

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// reconstructBooking rebuilds the entity from stored columns, revalidating
// through the value objects so corrupt rows surface as store failures.
func reconstructBooking(
	id, serviceID uuid.UUID,
	date pgtype.Date,
	timeOfDay pgtype.Time,
	statusRaw, nameRaw, phoneRaw string,
	notesRaw pgtype.Text,
	createdAt, updatedAt time.Time,
) (*booking.Booking, error) {
	appointmentDate, err := booking.NewAppointmentDate(pgconv.DateFromPgtype(date).Format("2006-01-02"))
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment date is invalid", err)
	}

	appointmentTime, err := booking.NewTimeOfDay(pgconv.TimeOfDayFromPgtype(timeOfDay))
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment time is invalid", err)
	}

	status, err := booking.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking status is invalid", err)
	}

	name, err := booking.NewCustomerName(nameRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored customer name is invalid", err)
	}

	phone, err := booking.NewPhone(phoneRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored customer phone is invalid", err)
	}

	notesValue := ""
	if notesRaw.Valid {
		notesValue = notesRaw.String
	}
	notes, err := booking.NewNotes(notesValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored notes are invalid", err)
	}

	return booking.ReconstructBooking(
		id, serviceID,
		appointmentDate, appointmentTime, status,
		name, phone, notes,
		createdAt, updatedAt,
	), nil
}
