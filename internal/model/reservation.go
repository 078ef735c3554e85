package model

import "time"

// RoomType is the closed set of room categories offered by the resort.
// Values outside this set are rejected during validation and never reach
// the rate table.
type RoomType string

// BoardType is the meal-plan category attached to a stay.  BB is
// Bed & Breakfast, HB Half Board and FB Full Board.
type BoardType string

const (
	RoomStandard RoomType = "STANDARD"
	RoomDeluxe   RoomType = "DELUXE"
	RoomSuite    RoomType = "SUITE"

	BoardBB BoardType = "BB"
	BoardHB BoardType = "HB"
	BoardFB BoardType = "FB"
)

// ParseRoomType validates a room category string.  The boolean reports
// whether the input names a known category.
func ParseRoomType(s string) (RoomType, bool) {
	switch RoomType(s) {
	case RoomStandard, RoomDeluxe, RoomSuite:
		return RoomType(s), true
	}
	return "", false
}

// ParseBoardType validates a board category string.
func ParseBoardType(s string) (BoardType, bool) {
	switch BoardType(s) {
	case BoardBB, BoardHB, BoardFB:
		return BoardType(s), true
	}
	return "", false
}

// DateLayout is the wire format for check-in and check-out dates.  Dates
// travel as plain YYYY-MM-DD strings with no time-of-day or timezone.
const DateLayout = "2006-01-02"

// Reservation records a guest's stay.  ReferenceID is assigned by the
// server on creation and is immutable afterwards; clients use it for
// invoice lookup.  TotalBill is recomputed server-side from the rate
// table and night count and is the source of truth for billing.  It is
// a pointer so that rows predating the billing rule render as a blank
// amount instead of zero.
//
// Fields:
//  ID           – primary key identifier.
//  ReferenceID  – server-assigned reference, numeric string from 1001.
//  GuestName    – guest full name.
//  Address      – guest postal address.
//  Phone        – guest contact number.
//  RoomType     – room category (STANDARD, DELUXE, SUITE).
//  BoardType    – meal plan (BB, HB, FB).
//  CheckInDate  – arrival date, YYYY-MM-DD.
//  CheckOutDate – departure date, strictly after CheckInDate.
//  TotalBill    – total amount in LKR, nullable.
//  CreatedAt    – creation timestamp.
type Reservation struct {
	ID           uint64    `json:"-"`
	ReferenceID  string    `json:"referenceId"`
	GuestName    string    `json:"guestName"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	RoomType     RoomType  `json:"roomType"`
	BoardType    BoardType `json:"boardType"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	TotalBill    *int64    `json:"totalBill"`
	CreatedAt    time.Time `json:"-"`
}

// Stats is the aggregate snapshot shown on the dashboard.  OccupancyRate
// is an opaque display string such as "85%".
type Stats struct {
	TotalBookings int64  `json:"totalBookings"`
	TotalRevenue  int64  `json:"totalRevenue"`
	OccupancyRate string `json:"occupancyRate"`
}
