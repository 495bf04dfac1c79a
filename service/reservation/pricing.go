package reservation

import "github.com/saqi06/Hotel-Management-API/model"

// ComputeTotal prices a stay linearly: nightly rate times nights. A same-day
// range prices to zero.
func ComputeTotal(nightlyRate float64, r model.DateRange) (float64, error) {
	if nightlyRate < 0 {
		return 0, makeErr(ErrInvalidRate)
	}
	return nightlyRate * float64(r.Nights()), nil
}
