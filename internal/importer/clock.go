package importer

import "time"

// systemClock reads system time in UTC.
type systemClock struct{}

// Timestamp returns milliseconds since epoch, used as version of imported prices.
func (c systemClock) Timestamp() int64 {
	return c.utc().UnixMilli()
}

// Now returns current time.
func (c systemClock) Now() *time.Time {
	now := c.utc()
	return &now
}

func (systemClock) utc() time.Time {
	return time.Now().UTC()
}
