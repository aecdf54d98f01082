package memory

import (
	"testing"
	"time"
)

func TestResolveUsesTableVerbatim(t *testing.T) {
	entry := Customization{Title: "Saree day ✨🌺", Description: "Very first Saree day together", Emblem: "💃"}
	resolver := NewResolver(Table{"2022-12-19": entry})
	date := time.Date(2022, time.December, 19, 0, 0, 0, 0, time.UTC)
	if got := resolver.Resolve("2022-12-19", date); got != entry {
		t.Fatalf("Resolve = %+v, want %+v", got, entry)
	}
}

func TestResolveFallsBackToMonthTheme(t *testing.T) {
	cases := []struct {
		month time.Month
		title string
		desc  string
		emb   string
	}{
		{time.January, "Winter Memories ❄️", "Cozy and warm - January 2024", "❄️"},
		{time.April, "Spring Memories 🌷", "Blooming memories - April 2024", "🌷"},
		{time.August, "Summer Memories 🏖️", "Fun in the sun - August 2024", "🏖️"},
		{time.November, "Autumn Memories 🎃", "Festive times - November 2024", "🎃"},
		{time.December, "Winter Memories 🎄", "Holiday magic - December 2024", "🎄"},
	}
	var resolver *Resolver
	for _, tc := range cases {
		date := time.Date(2024, tc.month, 5, 0, 0, 0, 0, time.UTC)
		got := resolver.Resolve(date.Format(DateKeyLayout), date)
		if got.Title != tc.title || got.Description != tc.desc || got.Emblem != tc.emb {
			t.Fatalf("%s: got %+v", tc.month, got)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	resolver := NewResolver(Table{})
	date := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := resolver.Resolve("2023-03-01", date)
	for i := 0; i < 5; i++ {
		if got := resolver.Resolve("2023-03-01", date); got != first {
			t.Fatalf("Resolve changed result: %+v vs %+v", got, first)
		}
	}
	if resolver.Len() != 0 {
		t.Fatalf("expected empty table, got %d", resolver.Len())
	}
}

func TestEveryMonthHasTheme(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		got := MonthTheme(time.Date(2020, m, 1, 0, 0, 0, 0, time.UTC))
		if got.Title == "" || got.Emblem == "" || got.Description == "" {
			t.Fatalf("month %s has empty theme: %+v", m, got)
		}
	}
}
