package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Image is one photo inside a station.
type Image struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	Caption   string `json:"caption"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// StationCard is the render payload for one station.
type StationCard struct {
	ID          string  `json:"id"`
	Index       int     `json:"index"`
	Emblem      string  `json:"emblem"`
	Title       string  `json:"title"`
	DisplayDate string  `json:"displayDate"`
	DateKey     string  `json:"dateKey"`
	Description string  `json:"description"`
	Cover       string  `json:"cover"`
	PhotoCount  int     `json:"photoCount"`
	PhotoLabel  string  `json:"photoLabel"`
	Unlocked    bool    `json:"unlocked"`
	Images      []Image `json:"images"`
}

// AlbumResponse is the payload of GET /api/album.
type AlbumResponse struct {
	SessionID      string        `json:"sessionId"`
	Title          string        `json:"title"`
	Origin         string        `json:"origin"`
	FallbackReason string        `json:"fallbackReason,omitempty"`
	LoadedAt       string        `json:"loadedAt"`
	Stations       []StationCard `json:"stations"`
	Skipped        []string      `json:"skipped"`
}

// StatusResponse is the payload of GET /api/status.
type StatusResponse struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	Backend      string `json:"backend"`
	Folder       string `json:"folder"`
	LockFilePath string `json:"lockFilePath"`
	StartedAt    string `json:"startedAt,omitempty"`
	Uptime       string `json:"uptime,omitempty"`
}

// ErrorResponse is returned with non-2xx API statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
