package service

import "time"

// CurrentDayWindow returns the inclusive bounds of the calendar day holding
// now, in now's location: 00:00:00.000 through 23:59:59.999. Callers must
// recompute it per request so a long-running process rolls over at midnight.
func CurrentDayWindow(now time.Time) (from, to time.Time) {
	y, m, d := now.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	// Next midnight minus 1ms, rather than from+24h, so DST transition days
	// keep an exact end bound.
	to = time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()).Add(-time.Millisecond)
	return from, to
}
