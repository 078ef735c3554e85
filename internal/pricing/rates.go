// Package pricing holds the resort's rate table and the stay estimator.
// All amounts are integer LKR per night; nothing in this package touches
// floating point, so totals are always exact.
package pricing

import (
	"fmt"

	"github.com/oceanview/resort-api/internal/model"
)

// Nightly base rates per room category and nightly supplements per board
// plan.  These mappings are process-wide constants: every caller that
// prices a stay goes through RoomRate/BoardRate so the figures cannot
// drift between call sites.
var (
	roomRates = map[model.RoomType]int64{
		model.RoomStandard: 15000,
		model.RoomDeluxe:   25000,
		model.RoomSuite:    45000,
	}
	boardRates = map[model.BoardType]int64{
		model.BoardBB: 0,
		model.BoardHB: 5000,
		model.BoardFB: 10000,
	}
)

// RoomRate returns the nightly base rate for a room category.  An
// unknown category is an input-validation error, never a silent default;
// callers are expected to pass only values from the closed enum.
func RoomRate(rt model.RoomType) (int64, error) {
	r, ok := roomRates[rt]
	if !ok {
		return 0, fmt.Errorf("unknown room type: %q", rt)
	}
	return r, nil
}

// BoardRate returns the nightly supplement for a meal plan.
func BoardRate(bt model.BoardType) (int64, error) {
	r, ok := boardRates[bt]
	if !ok {
		return 0, fmt.Errorf("unknown board type: %q", bt)
	}
	return r, nil
}
