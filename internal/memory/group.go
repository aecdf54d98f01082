package memory

import (
	"regexp"
	"sort"
	"time"
)

// DateKeyLayout is the layout of the date token embedded in asset names.
const DateKeyLayout = "2006-01-02"

var dateKeyPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// GroupResult is the output of GroupByDate.
type GroupResult struct {
	Groups []DateGroup
	// Skipped lists assets whose names carry no valid date token, in input order.
	Skipped []ImageAsset
}

// ExtractDateKey returns the first YYYY-MM-DD token in name and the calendar
// date it denotes. Tokens that are not real dates (2022-13-40) are rejected.
func ExtractDateKey(name string) (string, time.Time, bool) {
	key := dateKeyPattern.FindString(name)
	if key == "" {
		return "", time.Time{}, false
	}
	date, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return "", time.Time{}, false
	}
	return key, date, true
}

// GroupByDate merges assets sharing a date token and sorts the groups
// ascending by date. Images keep their input order inside a group.
func GroupByDate(assets []ImageAsset) GroupResult {
	var result GroupResult
	index := make(map[string]int)
	for _, asset := range assets {
		key, date, ok := ExtractDateKey(asset.Name)
		if !ok {
			result.Skipped = append(result.Skipped, asset)
			continue
		}
		pos, seen := index[key]
		if !seen {
			pos = len(result.Groups)
			index[key] = pos
			result.Groups = append(result.Groups, DateGroup{DateKey: key, Date: date})
		}
		result.Groups[pos].Images = append(result.Groups[pos].Images, asset)
	}
	sort.SliceStable(result.Groups, func(i, j int) bool {
		return result.Groups[i].Date.Before(result.Groups[j].Date)
	})
	return result
}

// SkippedNames returns the names of skipped assets.
func (r GroupResult) SkippedNames() []string {
	if len(r.Skipped) == 0 {
		return nil
	}
	names := make([]string, len(r.Skipped))
	for i, asset := range r.Skipped {
		names[i] = asset.Name
	}
	return names
}
