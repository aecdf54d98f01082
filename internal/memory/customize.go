package memory

import (
	"fmt"
	"time"
)

type monthTheme struct {
	season string
	emblem string
	vibe   string
}

// monthThemes is indexed by time.Month-1.
var monthThemes = [12]monthTheme{
	{"Winter", "❄️", "Cozy and warm"},
	{"Winter", "💝", "Love and friendship"},
	{"Spring", "🌸", "Fresh beginnings"},
	{"Spring", "🌷", "Blooming memories"},
	{"Spring", "🌺", "Vibrant moments"},
	{"Summer", "☀️", "Sunny adventures"},
	{"Summer", "🌻", "Bright and cheerful"},
	{"Summer", "🏖️", "Fun in the sun"},
	{"Autumn", "🍂", "Golden memories"},
	{"Autumn", "🍁", "Colorful moments"},
	{"Autumn", "🎃", "Festive times"},
	{"Winter", "🎄", "Holiday magic"},
}

// Table maps a YYYY-MM-DD date key to its customization.
type Table map[string]Customization

// Resolver resolves display metadata for a date group. The zero value has an
// empty table and always falls back to month themes.
type Resolver struct {
	table Table
}

// NewResolver returns a resolver over table. The table is read, never mutated.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the table entry for dateKey verbatim, or a customization
// synthesized from the month of date.
func (r *Resolver) Resolve(dateKey string, date time.Time) Customization {
	if r != nil {
		if custom, ok := r.table[dateKey]; ok {
			return custom
		}
	}
	return MonthTheme(date)
}

// MonthTheme builds the fallback customization for date.
func MonthTheme(date time.Time) Customization {
	theme := monthThemes[int(date.Month())-1]
	return Customization{
		Title:       fmt.Sprintf("%s Memories %s", theme.season, theme.emblem),
		Description: fmt.Sprintf("%s - %s %d", theme.vibe, date.Month(), date.Year()),
		Emblem:      theme.emblem,
	}
}

// Len reports the number of custom entries.
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.table)
}
