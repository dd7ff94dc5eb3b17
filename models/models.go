package models

import "time"

// Source is one configured feed: where to fetch it and how to label its
// entries on the page.
type Source struct {
	Name     string `toml:"name"`
	URL      string `toml:"url"`
	Category string `toml:"category"`
}

// Entry is the normalized, dialect-independent form of one syndicated story.
// Title and Link are always non-empty; Published is nil when the feed carried
// no parseable date.
type Entry struct {
	Title       string
	Link        string
	Description string
	Published   *time.Time
	Source      string
	Category    string
	Author      string
	Image       string
}

// Aggregate is the merged, sorted and capped entry list, plus the distinct
// source and category names present in it, both alphabetically ordered.
type Aggregate struct {
	Entries    []Entry
	Sources    []string
	Categories []string
}
