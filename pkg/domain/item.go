package domain

import "time"

// Item represents one published unit from a source, immutable once observed.
// ID is the video ID, unique within the source.
type Item struct {
	ID        string
	SourceID  string
	Title     string
	Published time.Time
}

// Token returns the item's ordering token.
func (i Item) Token() Checkpoint {
	return Checkpoint{Published: i.Published, ItemID: i.ID}
}

// URL returns the short watch link for the item.
func (i Item) URL() string {
	return "https://youtu.be/" + i.ID
}
