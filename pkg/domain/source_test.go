package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckpoint_Before(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		c, other Checkpoint
		want     bool
	}{
		{
			name:  "earlier timestamp orders before",
			c:     Checkpoint{Published: base, ItemID: "b"},
			other: Checkpoint{Published: base.Add(time.Minute), ItemID: "a"},
			want:  true,
		},
		{
			name:  "later timestamp does not order before",
			c:     Checkpoint{Published: base.Add(time.Minute), ItemID: "a"},
			other: Checkpoint{Published: base, ItemID: "b"},
			want:  false,
		},
		{
			name:  "same timestamp breaks tie on item id",
			c:     Checkpoint{Published: base, ItemID: "a"},
			other: Checkpoint{Published: base, ItemID: "b"},
			want:  true,
		},
		{
			name:  "identical tokens are not before each other",
			c:     Checkpoint{Published: base, ItemID: "a"},
			other: Checkpoint{Published: base, ItemID: "a"},
			want:  false,
		},
		{
			name:  "equal instants in different locations compare equal",
			c:     Checkpoint{Published: base.In(time.FixedZone("X", 3600)), ItemID: "a"},
			other: Checkpoint{Published: base, ItemID: "a"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Before(tt.other))
		})
	}
}

func TestCheckpoint_Covers(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cp := Checkpoint{Published: base, ItemID: "v10"}

	assert.True(t, cp.Covers(Checkpoint{Published: base.Add(-time.Hour), ItemID: "v09"}), "older item is covered")
	assert.True(t, cp.Covers(cp), "checkpoint covers itself")
	assert.False(t, cp.Covers(Checkpoint{Published: base.Add(time.Hour), ItemID: "v11"}), "newer item is not covered")
	assert.False(t, cp.Covers(Checkpoint{Published: base, ItemID: "v11"}), "tie broken by id, larger id not covered")
}

func TestItem_Token(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	item := Item{ID: "dQw4w9WgXcQ", SourceID: "UUabc", Title: "test", Published: published}

	token := item.Token()
	assert.Equal(t, published, token.Published)
	assert.Equal(t, "dQw4w9WgXcQ", token.ItemID)
}

func TestItem_URL(t *testing.T) {
	item := Item{ID: "dQw4w9WgXcQ"}
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", item.URL())
}
