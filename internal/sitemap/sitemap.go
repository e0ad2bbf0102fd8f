// Package sitemap builds and persists the site's sitemap.xml.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/romangod6/sitemap-builder/internal/models"
	"github.com/romangod6/sitemap-builder/internal/slug"
)

// DateLayout is the W3C date form used for <lastmod>.
const DateLayout = "2006-01-02"

// Options control how a sitemap is assembled.
type Options struct {
	SiteURL    string
	Categories []string
	// Comments adds an XML comment naming each entry.
	Comments bool
}

// ItemURL returns the page URL of an item.
func ItemURL(siteURL string, item models.Item) string {
	return siteURL + "/?item=" + slug.Slugify(item.Name)
}

// CategoryURL returns the listing URL of a category.
func CategoryURL(siteURL, category string) string {
	return siteURL + "/?category=" + category
}

// Build assembles the entries in document order: the homepage, every item in
// input order (duplicates kept), then the categories in the given order.
func Build(items []models.Item, opts Options, today time.Time) *models.Sitemap {
	lastMod := today.Format(DateLayout)
	urls := make([]models.URL, 0, 1+len(items)+len(opts.Categories))

	urls = append(urls, models.URL{
		Loc:        opts.SiteURL + "/",
		LastMod:    lastMod,
		ChangeFreq: models.ChangeWeekly,
		Priority:   models.PriorityHome,
		Comment:    "Homepage",
	})

	for _, item := range items {
		urls = append(urls, models.URL{
			Loc:        ItemURL(opts.SiteURL, item),
			LastMod:    lastMod,
			ChangeFreq: models.ChangeMonthly,
			Priority:   models.PriorityItem,
			Comment:    item.Name,
		})
	}

	for _, category := range opts.Categories {
		urls = append(urls, models.URL{
			Loc:        CategoryURL(opts.SiteURL, category),
			LastMod:    lastMod,
			ChangeFreq: models.ChangeMonthly,
			Priority:   models.PriorityCategory,
			Comment:    "Category: " + category,
		})
	}

	if !opts.Comments {
		for i := range urls {
			urls[i].Comment = ""
		}
	}

	return &models.Sitemap{XMLNS: models.SitemapNamespace, URLs: urls}
}

// Render lays the sitemap out the way the site has always published it: two
// space indentation, an optional comment above each <url>, a blank line after
// each entry and no newline after </urlset>.
func Render(sm *models.Sitemap) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<urlset xmlns="` + escape(sm.XMLNS) + `">` + "\n")
	for _, u := range sm.URLs {
		if u.Comment != "" {
			buf.WriteString("  <!-- " + commentText(u.Comment) + " -->\n")
		}
		buf.WriteString("  <url>\n")
		buf.WriteString("    <loc>" + escape(u.Loc) + "</loc>\n")
		if u.LastMod != "" {
			buf.WriteString("    <lastmod>" + escape(u.LastMod) + "</lastmod>\n")
		}
		if u.ChangeFreq != "" {
			buf.WriteString("    <changefreq>" + escape(u.ChangeFreq) + "</changefreq>\n")
		}
		if u.Priority != "" {
			buf.WriteString("    <priority>" + escape(u.Priority) + "</priority>\n")
		}
		buf.WriteString("  </url>\n\n")
	}
	buf.WriteString("</urlset>")
	return buf.Bytes()
}

// Generate is Build followed by Render.
func Generate(items []models.Item, opts Options, today time.Time) []byte {
	return Render(Build(items, opts, today))
}

func escape(s string) string {
	var b strings.Builder
	// xml.EscapeText only fails when the writer does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// commentText keeps a comment well-formed: "--" may not appear inside it.
func commentText(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}
