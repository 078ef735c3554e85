// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published after a reservation has been
// persisted.  It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type ReservationCreatedEvent struct {
	ReferenceID  string `json:"reference_id"`
	GuestName    string `json:"guest_name"`
	RoomType     string `json:"room_type"`
	BoardType    string `json:"board_type"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int64  `json:"nights"`
	TotalBill    int64  `json:"total_bill"`
	CreatedAt    string `json:"created_at"`
}
