//go:build property
// +build property

package usage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"gitignore-tui/internal/domain"
)

// TestRecentListProperties checks the recently-used invariants for any
// sequence of selections
func TestRecentListProperties(t *testing.T) {
	dir, err := os.MkdirTemp("", "usage-property")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	properties := gopter.NewProperties(nil)
	run := 0

	properties.Property("recent list is bounded, unique and most-recent first", prop.ForAll(
		func(picks []string) bool {
			run++
			s := NewStore(filepath.Join(dir, "usage", string(rune('a'+run%26)), "usage.json"))
			for _, p := range picks {
				if _, err := s.RecordUse(p); err != nil {
					return false
				}
			}

			recent := s.Recent()
			if len(recent) > domain.MaxRecent {
				return false
			}
			seen := map[string]bool{}
			for _, n := range recent {
				if seen[n] {
					return false
				}
				seen[n] = true
			}
			if len(picks) > 0 && recent[0] != picks[len(picks)-1] {
				return false
			}

			total := 0
			for _, c := range s.Usage() {
				total += c
			}
			return total == len(picks)
		},
		gen.SliceOf(gen.RegexMatch(`^[a-z]{1,3}$`)),
	))

	properties.TestingRun(t)
}
