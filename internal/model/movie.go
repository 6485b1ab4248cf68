package model

// Movie は共有カタログの映画を表す。
type Movie struct {
	ID          int64
	Title       string
	Description string
	ReleaseYear int
	Genre       string
	ImageURL    string
}
