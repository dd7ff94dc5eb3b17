package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"futuremodern/build"
	"futuremodern/config"
	"futuremodern/fetcher"
	"futuremodern/render"
)

const configFile = "feeds.toml"

// runBuild is the whole pipeline: load config, fetch and normalize every
// feed, aggregate, render. Only an unreadable config or an unwritable output
// path fails the run; per-feed failures have already been logged and skipped
// by the time we get an aggregate back.
func runBuild(output string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", configFile, err)
	}

	f := fetcher.New(cfg.FetchTimeout, cfg.FetchDelay, cfg.UserAgent)
	agg := build.Run(cfg, f)
	log.Infof("Total: %d items from %d sources", len(agg.Entries), len(agg.Sources))

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	site := render.Site{Title: cfg.Title, Description: cfg.Description}
	if err := render.Page(out, site, agg, time.Now()); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	log.Infof("Written to %s", output)
	return nil
}
