package pricing

import (
	"time"

	"github.com/oceanview/resort-api/internal/model"
)

// Nights returns the number of nights between two YYYY-MM-DD dates.  Both
// dates are parsed as date-only values pinned to midnight UTC, so the
// count never shifts by one across daylight-saving transitions.  The
// boolean is false when either date is absent or unparseable.  A valid
// pair with check-out on or before check-in yields zero or a negative
// count; callers treat anything below 1 as "no stay".
func Nights(checkIn, checkOut string) (int64, bool) {
	in, err := time.ParseInLocation(model.DateLayout, checkIn, time.UTC)
	if err != nil {
		return 0, false
	}
	out, err := time.ParseInLocation(model.DateLayout, checkOut, time.UTC)
	if err != nil {
		return 0, false
	}
	return int64(out.Sub(in) / (24 * time.Hour)), true
}

// Estimate computes the total price of a stay:
//
//	nights * (roomRate + boardRate)
//
// The second return value is false when no estimate can be given: a date
// is missing or malformed, the night count is not positive, or a
// category is outside its enum.  Callers hide the estimate in that case
// rather than treating it as a failure.  The function is pure and
// idempotent; it is safe to call on every field edit.
func Estimate(checkIn, checkOut string, rt model.RoomType, bt model.BoardType) (int64, bool) {
	nights, ok := Nights(checkIn, checkOut)
	if !ok || nights <= 0 {
		return 0, false
	}
	room, err := RoomRate(rt)
	if err != nil {
		return 0, false
	}
	board, err := BoardRate(bt)
	if err != nil {
		return 0, false
	}
	return nights * (room + board), true
}
