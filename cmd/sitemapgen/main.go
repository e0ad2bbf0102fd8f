package main

import (
	"github.com/alecthomas/kong"
)

// CLI is the sitemapgen command line. Without a subcommand it regenerates
// sitemap.xml.
type CLI struct {
	Config string `short:"c" help:"Configuration file path (defaults to ./config.yaml or ./config/config.yaml)" type:"path"`
	Debug  bool   `short:"d" help:"Enable debug logging"`

	SiteURL string `name:"site-url" help:"Override site.url"`
	Data    string `help:"Override data.file" type:"path"`
	Output  string `short:"o" help:"Override output.file" type:"path"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Regenerate sitemap.xml from the item data file"`
	Stats    StatsCmd    `cmd:"" help:"Count the URLs a sitemap would contain without writing it"`
	Preview  PreviewCmd  `cmd:"" help:"Print the first entries of the sitemap"`
	Serve    ServeCmd    `cmd:"" help:"Serve the live sitemap and item API over HTTP"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sitemapgen"),
		kong.Description("Regenerates the static sitemap.xml for the item catalogue."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
