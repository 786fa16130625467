package timeutil

import "time"

var limaLocation = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		return time.FixedZone("America/Lima", -5*60*60)
	}
	return loc
}

// Now returns the current time in America/Lima timezone.
func Now() time.Time {
	return time.Now().In(limaLocation)
}

// Today returns midnight of the current day in America/Lima timezone.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, limaLocation)
}

// Location returns the America/Lima location instance.
func Location() *time.Location {
	return limaLocation
}
