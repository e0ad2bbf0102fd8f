// internal/models/sitemap.go
package models

import "encoding/xml"

const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq values used by the generated sitemap.
const (
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// Priorities of the three entry kinds.
const (
	PriorityHome     = "1.0"
	PriorityItem     = "0.8"
	PriorityCategory = "0.7"
)

// Sitemap represents the structure of an XML sitemap.
type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single URL entry in the sitemap. Comment is rendered
// above the entry and never round-trips through encoding/xml.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
	Comment    string `xml:"-"`
}
