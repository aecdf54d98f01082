package memory

import (
	"fmt"
	"time"
)

type demoEntry struct {
	date        string
	emblem      string
	title       string
	description string
}

var demoEntries = []demoEntry{
	{"2022-09-23", "🎨", "Autumn Beginnings 🍂", "Where our beautiful journey started..."},
	{"2022-10-21", "🪔", "Festive Moments ✨", "Celebrating life and friendship together"},
	{"2022-12-17", "☕", "Winter Memories ❄️", "Cozy moments and warm hearts"},
	{"2023-01-17", "🌟", "New Year, New Adventures 🎊", "Starting the year with joy and laughter"},
	{"2023-10-31", "🍁", "Autumn Magic 🍁", "Golden moments captured forever"},
}

// DemoImagesPerStation is the number of placeholder photos in each demo station.
const DemoImagesPerStation = 2

// DemoStations returns the built-in dataset shown when storage yields nothing.
// Each call returns fresh slices.
func DemoStations() []MemoryStation {
	stations := make([]MemoryStation, 0, len(demoEntries))
	photo := 1
	for i, entry := range demoEntries {
		date, _ := time.Parse(DateKeyLayout, entry.date)
		images := make([]ImageAsset, 0, DemoImagesPerStation)
		for n := 0; n < DemoImagesPerStation; n++ {
			images = append(images, ImageAsset{
				URL:       fmt.Sprintf("https://picsum.photos/800/600?random=%d", photo),
				Name:      fmt.Sprintf("Memory %d", photo),
				CreatedAt: date,
			})
			photo++
		}
		stations = append(stations, MemoryStation{
			ID:          StationID(i),
			Emblem:      entry.emblem,
			Title:       entry.title,
			DisplayDate: FormatDisplayDate(date),
			DateKey:     entry.date,
			Description: entry.description,
			Images:      images,
			Unlocked:    i == 0,
		})
	}
	return stations
}
