// Package build runs the fetch → detect → normalize → aggregate pipeline.
package build

import (
	log "github.com/sirupsen/logrus"

	"futuremodern/config"
	"futuremodern/feeds"
	"futuremodern/fetcher"
	"futuremodern/models"
)

// Run fetches every configured feed in order and returns the aggregated
// entry list. Feeds are fetched one at a time with a politeness delay
// between requests. A feed that fails to fetch or parse is logged and
// contributes zero entries; it never aborts the run.
func Run(cfg *config.Config, f *fetcher.Fetcher) models.Aggregate {
	var all []models.Entry

	log.Infof("Fetching %d feeds", len(cfg.Feeds))
	for i, src := range cfg.Feeds {
		if i > 0 {
			f.Throttle()
		}

		log.WithField("url", src.URL).Infof("Fetching %s", src.Name)
		text, err := f.Fetch(src.URL)
		if err != nil {
			log.Errorf("Error fetching %s: %v", src.URL, err)
			continue
		}

		var entries []models.Entry
		switch feeds.Detect(text) {
		case feeds.DialectAtom:
			entries, err = feeds.ParseAtom(text, src)
		default:
			entries, err = feeds.ParseRSS(text, src)
		}
		if err != nil {
			log.Errorf("Parse error for %s: %v", src.Name, err)
			continue
		}

		log.Infof("%s: %d items", src.Name, len(entries))
		all = append(all, entries...)
	}

	return feeds.Aggregate(all, cfg.MaxItems)
}
