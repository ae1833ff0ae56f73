package building

import "time"

// Timestep is a single point in simulated time. Simulations start at
// 00:00 on a Monday; the weekday follows from the day offset.
type Timestep struct {
	Index     int
	Minute    int // absolute minute offset from simulation start
	HourOfDay float64
	Day       int
	Weekday   time.Weekday
	Season    Season
}

// Weekend reports whether the timestep falls on Saturday or Sunday.
func (t Timestep) Weekend() bool {
	return t.Weekday == time.Saturday || t.Weekday == time.Sunday
}
