package memory

import (
	"fmt"
	"time"
)

// DisplayDateLayout formats station dates, e.g. "Friday, September 23, 2022".
const DisplayDateLayout = "Monday, January 2, 2006"

// StationID returns the identifier of the station at index.
func StationID(index int) string {
	return fmt.Sprintf("station-%d", index)
}

// FormatDisplayDate renders date for station cards.
func FormatDisplayDate(date time.Time) string {
	return date.Format(DisplayDateLayout)
}

// BuildStations creates one station per group in order. The first station is
// unlocked; all others start locked. A nil resolver uses month themes only.
func BuildStations(groups []DateGroup, resolver *Resolver) []MemoryStation {
	stations := make([]MemoryStation, 0, len(groups))
	for i, group := range groups {
		custom := resolver.Resolve(group.DateKey, group.Date)
		stations = append(stations, MemoryStation{
			ID:          StationID(i),
			Emblem:      custom.Emblem,
			Title:       custom.Title,
			DisplayDate: FormatDisplayDate(group.Date),
			DateKey:     group.DateKey,
			Description: custom.Description,
			Images:      group.Images,
			Unlocked:    i == 0,
		})
	}
	return stations
}

// Organize runs grouping and station building over a raw listing.
func Organize(assets []ImageAsset, resolver *Resolver) ([]MemoryStation, GroupResult) {
	grouped := GroupByDate(assets)
	return BuildStations(grouped.Groups, resolver), grouped
}
