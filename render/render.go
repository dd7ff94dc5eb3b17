// Package render projects the aggregated entry list into one self-contained
// HTML document with inline styling and client-side filtering.
package render

import (
	"crypto/md5"
	_ "embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"futuremodern/models"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

// Site is the top-level page metadata from the config.
type Site struct {
	Title       string
	Description string
}

type entryView struct {
	models.Entry
	DateLabel   string
	SourceColor template.CSS
}

type pageData struct {
	Site        Site
	Entries     []entryView
	Sources     []string
	Categories  []string
	BuildTime   string
	ItemCount   int
	SourceCount int
}

// Page writes the full document for the aggregate to w. Relative date labels
// are computed against now, which should be the render time. All feed-derived
// text goes through the template's contextual escaping.
func Page(w io.Writer, site Site, agg models.Aggregate, now time.Time) error {
	views := make([]entryView, 0, len(agg.Entries))
	for _, e := range agg.Entries {
		views = append(views, entryView{
			Entry:       e,
			DateLabel:   FormatRelative(e.Published, now),
			SourceColor: template.CSS(SourceColor(e.Source)),
		})
	}

	return page.Execute(w, pageData{
		Site:        site,
		Entries:     views,
		Sources:     agg.Sources,
		Categories:  agg.Categories,
		BuildTime:   now.UTC().Format("2006-01-02 15:04 UTC"),
		ItemCount:   len(agg.Entries),
		SourceCount: len(agg.Sources),
	})
}

// SourceColor maps a source name to a muted HSL color. The hue comes from a
// stable hash of the name, so the same source renders the same color within
// and across runs.
func SourceColor(name string) string {
	sum := md5.Sum([]byte(name))
	h, _ := strconv.ParseInt(hex.EncodeToString(sum[:3]), 16, 64)
	return fmt.Sprintf("hsl(%d, 40%%, 45%%)", h%360)
}

// FormatRelative renders a human-friendly date label relative to now. A nil
// date renders as an empty label.
func FormatRelative(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	diff := now.Sub(*t)
	if diff < 0 {
		diff = 0
	}
	days := int(diff.Hours()) / 24

	switch {
	case days == 0:
		switch {
		case diff < time.Minute:
			return "just now"
		case diff < time.Hour:
			return fmt.Sprintf("%dm ago", int(diff.Minutes()))
		default:
			return fmt.Sprintf("%dh ago", int(diff.Hours()))
		}
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("Jan 02, 2006")
	}
}
