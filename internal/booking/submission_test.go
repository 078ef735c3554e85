package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanview/resort-api/internal/model"
)

func validFields() Fields {
	return Fields{
		GuestName:    "Nimal Perera",
		Address:      "12 Galle Road, Colombo",
		Phone:        "+94 77 123 4567",
		RoomType:     "STANDARD",
		BoardType:    "HB",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-04",
	}
}

func TestBuildSubmissionAcceptsValidInput(t *testing.T) {
	req, err := BuildSubmission(validFields())
	require.NoError(t, err)
	assert.Equal(t, "Nimal Perera", req.GuestName)
	assert.Equal(t, model.RoomStandard, req.RoomType)
	assert.Equal(t, model.BoardHB, req.BoardType)
	assert.Equal(t, int64(3), req.Nights)
}

func TestBuildSubmissionTrimsFreeTextFields(t *testing.T) {
	f := validFields()
	f.GuestName = "  Nimal Perera  "
	f.Address = " 12 Galle Road "
	req, err := BuildSubmission(f)
	require.NoError(t, err)
	assert.Equal(t, "Nimal Perera", req.GuestName)
	assert.Equal(t, "12 Galle Road", req.Address)
}

func fieldNames(verr *ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		names = append(names, fe.Field)
	}
	return names
}

func TestBuildSubmissionRejectsMissingGuestName(t *testing.T) {
	f := validFields()
	f.GuestName = ""
	_, err := BuildSubmission(f)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, fieldNames(verr), "guestName")
}

func TestBuildSubmissionCollectsEveryFailure(t *testing.T) {
	_, err := BuildSubmission(Fields{})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	names := fieldNames(verr)
	assert.Contains(t, names, "guestName")
	assert.Contains(t, names, "address")
	assert.Contains(t, names, "phone")
	assert.Contains(t, names, "roomType")
	assert.Contains(t, names, "boardType")
	assert.Contains(t, names, "checkInDate")
	assert.Contains(t, names, "checkOutDate")
	assert.Len(t, verr.Fields, 7)
}

func TestBuildSubmissionRejectsUnknownCategories(t *testing.T) {
	f := validFields()
	f.RoomType = "PENTHOUSE"
	f.BoardType = "XX"
	_, err := BuildSubmission(f)
	require.Error(t, err)

	verr := err.(*ValidationError)
	names := fieldNames(verr)
	assert.Contains(t, names, "roomType")
	assert.Contains(t, names, "boardType")
}

func TestBuildSubmissionRejectsNonPositiveStay(t *testing.T) {
	f := validFields()
	f.CheckOutDate = f.CheckInDate
	_, err := BuildSubmission(f)
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Contains(t, fieldNames(verr), "checkOutDate")

	f.CheckOutDate = "2023-12-25" // before check-in
	_, err = BuildSubmission(f)
	require.Error(t, err)

	f.CheckOutDate = "04-01-2024" // malformed
	_, err = BuildSubmission(f)
	require.Error(t, err)
	verr = err.(*ValidationError)
	assert.Contains(t, fieldNames(verr), "checkInDate")
}

func TestDisplayRow(t *testing.T) {
	bill := int64(60000)
	row := DisplayRow(model.Reservation{
		ReferenceID:  "1001",
		GuestName:    "Nimal Perera",
		RoomType:     model.RoomStandard,
		BoardType:    model.BoardHB,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-04",
		TotalBill:    &bill,
	})
	assert.Equal(t, "#1001", row.Reference)
	assert.Equal(t, "Nimal Perera", row.Guest)
	assert.Equal(t, "STANDARD / HB", row.Plan)
	assert.Equal(t, "2024-01-01 to 2024-01-04", row.StayRange)
	assert.Equal(t, "LKR 60,000", row.Bill)
}

func TestDisplayRowWithNilBill(t *testing.T) {
	// Rows predating the billing rule must render with a blank amount,
	// never panic.
	assert.NotPanics(t, func() {
		row := DisplayRow(model.Reservation{ReferenceID: "1002", GuestName: "K. Silva"})
		assert.Equal(t, "", row.Bill)
	})
}

func TestFormatLKR(t *testing.T) {
	assert.Equal(t, "0", FormatLKR(0))
	assert.Equal(t, "999", FormatLKR(999))
	assert.Equal(t, "1,000", FormatLKR(1000))
	assert.Equal(t, "60,000", FormatLKR(60000))
	assert.Equal(t, "1,234,567", FormatLKR(1234567))
	assert.Equal(t, "-55,000", FormatLKR(-55000))
}
