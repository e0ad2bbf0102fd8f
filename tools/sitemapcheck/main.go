// sitemapcheck inspects a sitemap.xml, local or remote, and reports entry
// counts per priority, duplicate locations and malformed entries.
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/romangod6/sitemap-builder/internal/sitemap"
)

func main() {
	source := "sitemap.xml"
	if len(os.Args) > 1 {
		source = os.Args[1]
	}

	document, err := fetchSitemap(source)
	if err != nil {
		log.Fatalf("Error fetching sitemap: %v", err)
	}

	sm, err := sitemap.Parse(document)
	if err != nil {
		log.Fatalf("Error parsing sitemap: %v", err)
	}

	report := sitemap.Analyze(sm)

	fmt.Printf("Total URLs found: %d\n\n", report.Total)

	priorities := make([]string, 0, len(report.ByPriority))
	for p := range report.ByPriority {
		priorities = append(priorities, p)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(priorities)))
	for _, p := range priorities {
		fmt.Printf("  priority %-4s %d\n", p, report.ByPriority[p])
	}

	if len(report.Duplicates) > 0 {
		fmt.Println("\n--- Duplicate locations ---")
		for _, loc := range report.Duplicates {
			fmt.Println(loc)
		}
	}

	if len(report.Problems) > 0 {
		fmt.Println("\n--- Problems ---")
		for _, p := range report.Problems {
			fmt.Println(p)
		}
		os.Exit(1)
	}
}

func fetchSitemap(source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
