package service

import "regexp"

// policeStationPattern captures the two or three syllables before the
// "경찰서" suffix; the leading stem is optional.
var policeStationPattern = regexp.MustCompile(`^(\p{Hangul}*)(\p{Hangul}{2,3})경찰서$`)

// NormalizeRegion maps a police-station jurisdiction label to the district
// token used for address matching ("서울강남경찰서" -> "강남구"). Labels that do
// not match are returned unchanged. This is a text heuristic, not a geocoder:
// callers must tolerate misses.
func NormalizeRegion(region string) string {
	return policeStationPattern.ReplaceAllString(region, "${2}구")
}
