package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "futuremodern",
		Usage: "Build a static aggregated feed page",
		Description: `Fetches every RSS 2.0 and Atom feed listed in feeds.toml,
		merges the entries into one list sorted newest first, and writes a
		self-contained index.html with client-side source and category filters.

		Feeds that fail to fetch or parse are logged and skipped; the page is
		built from whatever remains.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "index.html",
				Usage: "Output HTML file path",
			},
		},
		Action: func(ctx *cli.Context) error {
			return runBuild(ctx.String("output"))
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
