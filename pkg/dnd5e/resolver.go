package dnd5e

import (
	"regexp"
	"strings"

	"github.com/dgrollins/monsterdash/pkg/models"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize creates a URL-safe slug from a free-text monster name: lower
// case, every run of non-alphanumeric characters collapsed to a single
// hyphen, leading/trailing hyphens stripped. Idempotent.
func Normalize(s string) string {
	slug := strings.ToLower(s)
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Resolve finds the index entry best matching query. Strategies are tried in
// strict priority order, first match wins:
//
//  1. exact case-insensitive equality with the display name
//  2. slug of the query equals the entry's index
//  3. case-insensitive substring containment, first in index order
//
// There is no fuzzy matching and no ranking among substring matches.
func Resolve(query string, entries []models.MonsterIndexEntry) (models.MonsterIndexEntry, bool) {
	queryLower := strings.ToLower(query)
	querySlug := Normalize(query)

	for _, e := range entries {
		if strings.ToLower(e.Name) == queryLower {
			return e, true
		}
	}
	for _, e := range entries {
		if e.Index == querySlug {
			return e, true
		}
	}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), queryLower) {
			return e, true
		}
	}

	return models.MonsterIndexEntry{}, false
}
