package domain

import (
	"math"
	"time"
)

type Exchange struct {
	// Name is the key used for this exchange in logs and titles.
	Name     string
	Request  Request
	Response Response
	Elapsed  time.Duration
}

// ElapsedMillis converts d to milliseconds rounded to two decimals. Negative
// durations clamp to zero.
func ElapsedMillis(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
