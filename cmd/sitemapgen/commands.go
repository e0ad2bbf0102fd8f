package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/romangod6/sitemap-builder/config"
	"github.com/romangod6/sitemap-builder/internal/api"
	"github.com/romangod6/sitemap-builder/internal/builder"
	"github.com/romangod6/sitemap-builder/internal/catalog"
	"github.com/romangod6/sitemap-builder/internal/utils"
)

func (c *CLI) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.Config != "" {
		cfg, err = config.LoadConfigFile(c.Config)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if c.SiteURL != "" {
		cfg.Site.URL = strings.TrimRight(c.SiteURL, "/")
	}
	if c.Data != "" {
		cfg.Data.File = c.Data
	}
	if c.Output != "" {
		cfg.Output.File = c.Output
	}
	if c.Debug {
		cfg.Log.Debug = true
	}
	return cfg, cfg.Validate()
}

// setup loads configuration and assembles a builder around the data file.
func (c *CLI) setup() (*config.Config, *builder.Builder, *utils.RunLogger, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := utils.NewRunLogger(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return nil, nil, nil, err
	}

	source := catalog.NewFileSource(cfg.Data.File, cfg.Data.Variable)
	return cfg, builder.NewBuilder(source, cfg, logger), logger, nil
}

type GenerateCmd struct {
	Quiet bool `short:"q" help:"Skip the follow-up hints"`
}

func (g *GenerateCmd) Run(cli *CLI) error {
	_, b, logger, err := cli.setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	if _, err := b.Run(); err != nil {
		return fmt.Errorf("sitemap generation failed: %w", err)
	}

	if !g.Quiet {
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("   1. Upload sitemap.xml to your website root directory")
		fmt.Println("   2. Submit it in Google Search Console: https://search.google.com/search-console")
		fmt.Println()
		fmt.Println("Re-run whenever items are added to or removed from the data file.")
	}
	return nil
}

type StatsCmd struct{}

func (s *StatsCmd) Run(cli *CLI) error {
	_, b, logger, err := cli.setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	stats, err := b.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Sitemap statistics:")
	fmt.Printf("   Homepage:   %d\n", stats.Homepage)
	fmt.Printf("   Items:      %d\n", stats.Items)
	fmt.Printf("   Categories: %d\n", stats.Categories)
	fmt.Println("   ─────────────────")
	fmt.Printf("   Total URLs: %d\n", stats.Total)
	return nil
}

type PreviewCmd struct {
	Limit int `short:"n" default:"20" help:"Number of entries to show"`
}

func (p *PreviewCmd) Run(cli *CLI) error {
	_, b, logger, err := cli.setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	document, _, err := b.Document()
	if err != nil {
		return err
	}

	head, shown := previewEntries(document, p.Limit)
	os.Stdout.Write(head)
	fmt.Printf("\n... showing first %d entries. Run generate for the full file.\n", shown)
	return nil
}

// previewEntries cuts document after the limit-th closing </url>.
func previewEntries(document []byte, limit int) ([]byte, int) {
	closing := []byte("</url>")
	end, shown := 0, 0
	for shown < limit {
		i := bytes.Index(document[end:], closing)
		if i < 0 {
			break
		}
		end += i + len(closing)
		shown++
	}
	if shown == 0 {
		return nil, 0
	}
	return document[:end], shown
}

type ServeCmd struct {
	Port int `short:"p" help:"Port to listen on (overrides server.port)"`
}

func (s *ServeCmd) Run(cli *CLI) error {
	cfg, b, logger, err := cli.setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	port := cfg.Server.Port
	if s.Port != 0 {
		port = s.Port
	}
	server := api.NewServer(port, b)

	errCh := make(chan error, 1)
	go func() {
		logger.LogInfo("Starting API server on port %d", port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return waitForShutdown(server, errCh, logger)
}

func waitForShutdown(server *api.Server, errCh <-chan error, logger *utils.RunLogger) error {
	// Handle system signals for shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start API server: %w", err)
		}
		return nil
	case <-sigChan:
	}
	logger.LogInfo("Shutting down...")

	// Graceful server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	logger.LogInfo("Server shut down gracefully")
	return nil
}
