package availability

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	ErrInvalidTime = errors.New("invalid time, expected HH:MM")

	ErrUnknownTimezone = errors.New("unknown timezone")

	ErrNotBusinessDay = errors.New("date is not a business day")

	ErrOutsideCatalog = errors.New("time is not an offered slot")

	ErrSlotOccupied = errors.New("slot is already booked")
)
