package database

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSource_EmbeddedMigrations(t *testing.T) {
	found, err := Source().FindMigrations()
	assert.Equal(t, err, nil)
	assert.Equal(t, len(found), 2)
	assert.Equal(t, found[0].Id, "20241101000001_create_reviews.sql")
	assert.Equal(t, found[1].Id, "20241115000001_add_analysis_trace.sql")

	for _, m := range found {
		if len(m.Up) == 0 || len(m.Down) == 0 {
			t.Fatalf("migration %s must have up and down statements", m.Id)
		}
	}
}
