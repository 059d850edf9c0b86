package cart

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

// StayRange is a half-open [check-in, check-out) range at day granularity.
// Times are normalized to UTC midnight; a valid range covers at least one
// night.
type StayRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	r := StayRange{
		CheckIn:  toDate(checkIn),
		CheckOut: toDate(checkOut),
	}
	if r.Nights() < 1 {
		return StayRange{}, ErrInvalidStayRange
	}
	return r, nil
}

func (r StayRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r StayRange) Equal(other StayRange) bool {
	return r.CheckIn.Equal(other.CheckIn) && r.CheckOut.Equal(other.CheckOut)
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TaxCents computes VAT on a subtotal, rounded to the nearest cent.
func TaxCents(subtotalCents int64, rate float64) int64 {
	return int64(math.Round(float64(subtotalCents) * rate))
}
