package memory

import "time"

// ImageAsset is one stored photo as listed by a storage source.
type ImageAsset struct {
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	FullPath    string    `json:"fullPath,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Updated     time.Time `json:"updated,omitempty"`
	Size        int64     `json:"size,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
}

// DateGroup holds the assets that share one extracted date token, in fetch order.
type DateGroup struct {
	DateKey string
	Date    time.Time
	Images  []ImageAsset
}

// Customization is the display metadata attached to a date.
type Customization struct {
	Title       string `toml:"title" yaml:"title" json:"title"`
	Description string `toml:"description" yaml:"description" json:"description"`
	Emblem      string `toml:"emblem" yaml:"emblem" json:"emblem"`
}

// MemoryStation is one unlockable entry on the album timeline.
type MemoryStation struct {
	ID          string
	Emblem      string
	Title       string
	DisplayDate string
	DateKey     string
	Description string
	Images      []ImageAsset
	Unlocked    bool
}
