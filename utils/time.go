package utils

import "time"

// Clock with an adjustable offset, for tests that need "now" to be some
// past or future date.
type ShiftedTime struct {
	Shift time.Duration
}

func (s *ShiftedTime) SetNow(now time.Time) {
	s.Shift = time.Until(now)
}

func (s *ShiftedTime) Now() time.Time {
	return time.Now().Add(s.Shift)
}

func (s *ShiftedTime) AdvanceNow(duration time.Duration) {
	s.Shift += duration
}
