// Package booking shapes raw form input into reservation requests and
// reservation records into the rows the dashboard displays.  Everything
// here is a pure function over its arguments.
package booking

import (
	"strings"

	"github.com/oceanview/resort-api/internal/model"
	"github.com/oceanview/resort-api/internal/pricing"
)

// Fields is the raw, untrusted form input for a new reservation.  All
// values arrive as strings exactly as typed or selected.
type Fields struct {
	GuestName    string `json:"guestName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	RoomType     string `json:"roomType"`
	BoardType    string `json:"boardType"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// ReservationRequest is a validated, normalized submission ready to hand
// to the persistence layer.  Nights carries the already-computed stay
// length so callers do not re-derive it.
type ReservationRequest struct {
	GuestName    string
	Address      string
	Phone        string
	RoomType     model.RoomType
	BoardType    model.BoardType
	CheckInDate  string
	CheckOutDate string
	Nights       int64
}

// FieldError names a single field that failed validation and why.  The
// JSON tags match the error body the API returns.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"defaultMessage"`
}

// ValidationError aggregates every field failure found in a submission.
// The caller is responsible for surfacing it to the user; it blocks the
// submission but is never fatal.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// BuildSubmission validates raw form fields and returns a normalized
// reservation request.  Rules:
//
//   - guestName, address, phone, both dates and both categories are
//     required non-empty,
//   - roomType/boardType must be members of their enums,
//   - checkOutDate must be strictly after checkInDate (zero or negative
//     nights is invalid).
//
// On failure it returns a *ValidationError listing every offending
// field.  Free-text fields are trimmed of surrounding whitespace.
func BuildSubmission(f Fields) (ReservationRequest, error) {
	verr := &ValidationError{}

	guest := strings.TrimSpace(f.GuestName)
	if guest == "" {
		verr.add("guestName", "Guest name is required")
	}
	address := strings.TrimSpace(f.Address)
	if address == "" {
		verr.add("address", "Address is required")
	}
	phone := strings.TrimSpace(f.Phone)
	if phone == "" {
		verr.add("phone", "Phone number is required")
	}

	room, ok := model.ParseRoomType(f.RoomType)
	if !ok {
		verr.add("roomType", "Room type must be STANDARD, DELUXE or SUITE")
	}
	board, ok := model.ParseBoardType(f.BoardType)
	if !ok {
		verr.add("boardType", "Board type must be BB, HB or FB")
	}

	// Each missing date is reported on its own so a blank form names
	// both fields.
	if strings.TrimSpace(f.CheckInDate) == "" {
		verr.add("checkInDate", "Check-in date is required")
	}
	if strings.TrimSpace(f.CheckOutDate) == "" {
		verr.add("checkOutDate", "Check-out date is required")
	}

	var nights int64
	if strings.TrimSpace(f.CheckInDate) != "" && strings.TrimSpace(f.CheckOutDate) != "" {
		n, ok := pricing.Nights(f.CheckInDate, f.CheckOutDate)
		switch {
		case !ok:
			verr.add("checkInDate", "Dates must be in YYYY-MM-DD format")
		case n < 1:
			verr.add("checkOutDate", "Check-out must be at least one day after Check-in")
		default:
			nights = n
		}
	}

	if len(verr.Fields) > 0 {
		return ReservationRequest{}, verr
	}

	return ReservationRequest{
		GuestName:    guest,
		Address:      address,
		Phone:        phone,
		RoomType:     room,
		BoardType:    board,
		CheckInDate:  f.CheckInDate,
		CheckOutDate: f.CheckOutDate,
		Nights:       nights,
	}, nil
}
