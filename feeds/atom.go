package feeds

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"

	"futuremodern/models"
)

// ParseAtom normalizes an Atom document into entries labelled with the
// source's name and category. A document that does not parse as Atom returns
// an error and no entries. Entries missing a title or link are dropped, and
// no image extraction is attempted for this dialect.
func ParseAtom(text string, src models.Source) ([]models.Entry, error) {
	parsed, err := (&atom.Parser{}).Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(parsed.Entries))
	for _, entry := range parsed.Entries {
		title := strings.TrimSpace(entry.Title)
		link := strings.TrimSpace(atomLink(entry))
		if title == "" || link == "" {
			continue
		}

		entries = append(entries, models.Entry{
			Title:       title,
			Link:        link,
			Description: Truncate(StripHTML(atomSummary(entry)), maxDescriptionLen),
			Published:   atomDate(entry),
			Source:      src.Name,
			Category:    src.Category,
			Author:      atomAuthor(entry),
		})
	}
	return entries, nil
}

// atomLink picks the rel="alternate" link, falling back to the first link.
func atomLink(entry *atom.Entry) string {
	for _, l := range entry.Links {
		if l != nil && l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(entry.Links) > 0 && entry.Links[0] != nil {
		return entry.Links[0].Href
	}
	return ""
}

// atomSummary prefers the summary element, falling back to content text.
func atomSummary(entry *atom.Entry) string {
	if s := strings.TrimSpace(entry.Summary); s != "" {
		return s
	}
	if entry.Content != nil {
		return strings.TrimSpace(entry.Content.Value)
	}
	return ""
}

// atomDate picks published over updated. When the chosen element is present
// but unparseable the date stays unset rather than falling through.
func atomDate(entry *atom.Entry) *time.Time {
	if strings.TrimSpace(entry.Published) != "" {
		return entry.PublishedParsed
	}
	return entry.UpdatedParsed
}

func atomAuthor(entry *atom.Entry) string {
	if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		return strings.TrimSpace(entry.Authors[0].Name)
	}
	return ""
}
