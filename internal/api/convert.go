package api

import (
	"fmt"
	"time"

	"memorylane/internal/album"
	"memorylane/internal/memory"
)

// PlaceholderCover returns the cover used for a station without photos.
func PlaceholderCover(index int) string {
	return fmt.Sprintf("https://picsum.photos/400/300?random=%d", index)
}

// PhotoLabel renders a photo count for a card: "1 photo", "3 photos".
func PhotoLabel(count int) string {
	if count == 1 {
		return "1 photo"
	}
	return fmt.Sprintf("%d photos", count)
}

// FromStation converts a station at position index.
func FromStation(index int, st memory.MemoryStation) StationCard {
	card := StationCard{
		ID:          st.ID,
		Index:       index,
		Emblem:      st.Emblem,
		Title:       st.Title,
		DisplayDate: st.DisplayDate,
		DateKey:     st.DateKey,
		Description: st.Description,
		PhotoCount:  len(st.Images),
		PhotoLabel:  PhotoLabel(len(st.Images)),
		Unlocked:    st.Unlocked,
		Images:      make([]Image, 0, len(st.Images)),
	}
	for _, asset := range st.Images {
		card.Images = append(card.Images, FromAsset(asset))
	}
	if len(card.Images) > 0 {
		card.Cover = card.Images[0].URL
	} else {
		card.Cover = PlaceholderCover(index)
	}
	return card
}

// FromAsset converts one photo.
func FromAsset(asset memory.ImageAsset) Image {
	img := Image{
		URL:     asset.URL,
		Name:    asset.Name,
		Caption: memory.Caption(asset.Name),
	}
	if !asset.CreatedAt.IsZero() {
		img.CreatedAt = formatTime(asset.CreatedAt)
	}
	return img
}

// FromStations converts stations in order.
func FromStations(stations []memory.MemoryStation) []StationCard {
	cards := make([]StationCard, 0, len(stations))
	for i, st := range stations {
		cards = append(cards, FromStation(i, st))
	}
	return cards
}

// FromSession converts a loaded album session.
func FromSession(session *album.Session) AlbumResponse {
	if session == nil {
		return AlbumResponse{Stations: []StationCard{}, Skipped: []string{}}
	}
	skipped := session.SkippedNames()
	if skipped == nil {
		skipped = []string{}
	}
	return AlbumResponse{
		SessionID:      session.ID,
		Title:          session.Title,
		Origin:         string(session.Origin),
		FallbackReason: session.FallbackReason,
		LoadedAt:       formatTime(session.LoadedAt),
		Stations:       FromStations(session.Stations),
		Skipped:        skipped,
	}
}

// ToStations rebuilds stations from an album payload, as the browser
// frontend does after fetching /api/album.
func ToStations(resp AlbumResponse) []memory.MemoryStation {
	stations := make([]memory.MemoryStation, 0, len(resp.Stations))
	for _, card := range resp.Stations {
		st := memory.MemoryStation{
			ID:          card.ID,
			Emblem:      card.Emblem,
			Title:       card.Title,
			DisplayDate: card.DisplayDate,
			DateKey:     card.DateKey,
			Description: card.Description,
			Unlocked:    card.Unlocked,
			Images:      make([]memory.ImageAsset, 0, len(card.Images)),
		}
		for _, img := range card.Images {
			asset := memory.ImageAsset{URL: img.URL, Name: img.Name}
			if parsed, err := time.Parse(dateTimeFormat, img.CreatedAt); err == nil {
				asset.CreatedAt = parsed
			}
			st.Images = append(st.Images, asset)
		}
		stations = append(stations, st)
	}
	return stations
}

// FormatTime renders t the way API payloads do.
func FormatTime(t time.Time) string {
	return formatTime(t)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
