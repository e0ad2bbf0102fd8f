package sitemap

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"regexp"

	"github.com/romangod6/sitemap-builder/internal/models"
)

var validSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Report summarises a sitemap document.
type Report struct {
	Total      int
	ByPriority map[string]int
	Duplicates []string
	Problems   []string
}

// Parse decodes a sitemap document.
func Parse(document []byte) (*models.Sitemap, error) {
	var sm models.Sitemap
	if err := xml.Unmarshal(document, &sm); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap: %w", err)
	}
	return &sm, nil
}

// Analyze counts entries per priority, lists duplicated locations and flags
// entries that break the sitemap or slug rules.
func Analyze(sm *models.Sitemap) *Report {
	r := &Report{
		Total:      len(sm.URLs),
		ByPriority: make(map[string]int),
	}

	if sm.XMLNS != models.SitemapNamespace {
		r.Problems = append(r.Problems, fmt.Sprintf("unexpected namespace %q", sm.XMLNS))
	}

	seen := make(map[string]int)
	for i, u := range sm.URLs {
		r.ByPriority[u.Priority]++
		seen[u.Loc]++
		if seen[u.Loc] == 2 {
			r.Duplicates = append(r.Duplicates, u.Loc)
		}

		parsed, err := url.Parse(u.Loc)
		if err != nil || !parsed.IsAbs() {
			r.Problems = append(r.Problems, fmt.Sprintf("entry %d: location %q is not an absolute URL", i, u.Loc))
			continue
		}
		if q := parsed.Query(); q.Has("item") && !validSlug.MatchString(q.Get("item")) {
			r.Problems = append(r.Problems, fmt.Sprintf("entry %d: invalid item slug %q", i, q.Get("item")))
		}
		if u.LastMod == "" {
			r.Problems = append(r.Problems, fmt.Sprintf("entry %d: missing lastmod", i))
		}
	}

	return r
}
