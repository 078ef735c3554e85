package booking

import (
	"strconv"

	"github.com/oceanview/resort-api/internal/model"
)

// Row is one line of the reservations table as the dashboard renders
// it: reference, guest, combined room/board plan, stay range and the
// formatted bill.
type Row struct {
	Reference string `json:"reference"`
	Guest     string `json:"guest"`
	Plan      string `json:"plan"`
	StayRange string `json:"stayRange"`
	Bill      string `json:"bill"`
}

// DisplayRow projects a reservation into its table row.  It is a pure
// function with no failure mode: a reservation with a nil TotalBill
// renders a blank amount rather than erroring.
func DisplayRow(r model.Reservation) Row {
	bill := ""
	if r.TotalBill != nil {
		bill = "LKR " + FormatLKR(*r.TotalBill)
	}
	return Row{
		Reference: "#" + r.ReferenceID,
		Guest:     r.GuestName,
		Plan:      string(r.RoomType) + " / " + string(r.BoardType),
		StayRange: r.CheckInDate + " to " + r.CheckOutDate,
		Bill:      bill,
	}
}

// FormatLKR renders an integer amount with thousand separators, e.g.
// 60000 -> "60,000".
func FormatLKR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
