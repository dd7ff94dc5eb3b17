package feeds

import (
	"strings"

	"github.com/mmcdole/gofeed/rss"

	"futuremodern/models"
)

// maxDescriptionLen caps entry descriptions after HTML stripping.
const maxDescriptionLen = 300

// ParseRSS normalizes an RSS 2.0 document into entries labelled with the
// source's name and category. A document that does not parse as RSS returns
// an error and no entries. Items missing a title or link are dropped.
func ParseRSS(text string, src models.Source) ([]models.Entry, error) {
	parsed, err := (&rss.Parser{}).Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		entries = append(entries, models.Entry{
			Title:       title,
			Link:        link,
			Description: Truncate(StripHTML(strings.TrimSpace(item.Description)), maxDescriptionLen),
			Published:   item.PubDateParsed,
			Source:      src.Name,
			Category:    src.Category,
			Author:      rssAuthor(item),
			Image:       rssImage(item),
		})
	}
	return entries, nil
}

// rssAuthor prefers the Dublin Core creator over the plain author element.
func rssAuthor(item *rss.Item) string {
	if dc := item.DublinCoreExt; dc != nil && len(dc.Creator) > 0 {
		if creator := strings.TrimSpace(dc.Creator[0]); creator != "" {
			return creator
		}
	}
	return strings.TrimSpace(item.Author)
}

// rssImage resolves a best-effort lead image. Priority: the media:content
// url attribute, then an enclosure whose type mentions "image", then the
// first <img> scanned out of content:encoded.
func rssImage(item *rss.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		if contents := media["content"]; len(contents) > 0 {
			if url := contents[0].Attrs["url"]; url != "" {
				return url
			}
		}
	}
	if enc := item.Enclosure; enc != nil && strings.Contains(enc.Type, "image") && enc.URL != "" {
		return enc.URL
	}
	content := item.Content
	if content == "" {
		if c, ok := item.Extensions["content"]; ok {
			if encoded := c["encoded"]; len(encoded) > 0 {
				content = encoded[0].Value
			}
		}
	}
	return FindImageInHTML(content)
}
