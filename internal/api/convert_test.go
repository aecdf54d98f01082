package api

import (
	"testing"
	"time"

	"memorylane/internal/album"
	"memorylane/internal/memory"
)

func TestPhotoLabel(t *testing.T) {
	for count, want := range map[int]string{0: "0 photos", 1: "1 photo", 2: "2 photos", 12: "12 photos"} {
		if got := PhotoLabel(count); got != want {
			t.Fatalf("PhotoLabel(%d) = %q, want %q", count, got, want)
		}
	}
}

func TestFromStationUsesFirstImageAsCover(t *testing.T) {
	created := time.Date(2023, time.January, 2, 3, 4, 5, 0, time.UTC)
	st := memory.MemoryStation{
		ID:       "station-0",
		Title:    "Autumn Beginnings 🍂",
		Unlocked: true,
		Images: []memory.ImageAsset{
			{URL: "/photos/memories/2022-09-23_beach-day.jpg", Name: "2022-09-23_beach-day.jpg", CreatedAt: created},
			{URL: "/photos/memories/2022-09-23_b.jpg", Name: "2022-09-23_b.jpg"},
		},
	}
	card := FromStation(0, st)
	if card.Cover != "/photos/memories/2022-09-23_beach-day.jpg" {
		t.Fatalf("unexpected cover %q", card.Cover)
	}
	if card.PhotoCount != 2 || card.PhotoLabel != "2 photos" || !card.Unlocked {
		t.Fatalf("unexpected card %+v", card)
	}
	if card.Images[0].Caption != "Beach Day" {
		t.Fatalf("unexpected caption %q", card.Images[0].Caption)
	}
	if card.Images[0].CreatedAt != "2023-01-02T03:04:05.000Z" {
		t.Fatalf("unexpected created at %q", card.Images[0].CreatedAt)
	}
	if card.Images[1].CreatedAt != "" {
		t.Fatal("zero timestamps should be omitted")
	}
}

func TestFromStationWithoutImages(t *testing.T) {
	card := FromStation(3, memory.MemoryStation{ID: "station-3"})
	if card.Cover != PlaceholderCover(3) || card.PhotoLabel != "0 photos" {
		t.Fatalf("unexpected card %+v", card)
	}
	if card.Images == nil {
		t.Fatal("images must encode as an empty list")
	}
}

func TestFromSession(t *testing.T) {
	session := &album.Session{
		ID:             "abc",
		Title:          "Our Journey",
		Origin:         album.OriginDemo,
		FallbackReason: album.ReasonEmpty,
		LoadedAt:       time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Stations:       memory.DemoStations(),
	}
	resp := FromSession(session)
	if resp.Origin != "demo" || resp.FallbackReason != "empty_listing" || resp.SessionID != "abc" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(resp.Stations) != 5 || resp.Stations[4].Index != 4 {
		t.Fatalf("unexpected stations %d", len(resp.Stations))
	}
	if resp.Skipped == nil || len(resp.Skipped) != 0 {
		t.Fatalf("expected empty skipped list, got %v", resp.Skipped)
	}
	if resp.LoadedAt != "2024-03-01T00:00:00.000Z" {
		t.Fatalf("unexpected loadedAt %q", resp.LoadedAt)
	}

	empty := FromSession(nil)
	if empty.Stations == nil || empty.Skipped == nil {
		t.Fatal("nil session must still encode empty lists")
	}
}

func TestToStationsRoundTripsLockState(t *testing.T) {
	stations := memory.DemoStations()
	rebuilt := ToStations(FromSession(&album.Session{Stations: stations}))
	if len(rebuilt) != len(stations) {
		t.Fatalf("expected %d stations, got %d", len(stations), len(rebuilt))
	}
	for i := range stations {
		if rebuilt[i].ID != stations[i].ID || rebuilt[i].Unlocked != stations[i].Unlocked {
			t.Fatalf("station %d differs: %+v", i, rebuilt[i])
		}
		if len(rebuilt[i].Images) != len(stations[i].Images) {
			t.Fatalf("station %d lost images", i)
		}
	}
	if !rebuilt[0].Images[0].CreatedAt.Equal(stations[0].Images[0].CreatedAt) {
		t.Fatalf("created at lost: %s", rebuilt[0].Images[0].CreatedAt)
	}
}
