// Package cmd — analyze command.
// Runs the full pipeline for one seed URL:
// fetch site → extract signals → enrich → merge → render → write.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/brandpipe/config"
	"github.com/gaurav-prasanna/brandpipe/core"
	"github.com/gaurav-prasanna/brandpipe/core/content"
	"github.com/gaurav-prasanna/brandpipe/core/enrich"
	"github.com/gaurav-prasanna/brandpipe/core/fetch"
	"github.com/gaurav-prasanna/brandpipe/core/output"
	"github.com/gaurav-prasanna/brandpipe/core/pipeline"
	"github.com/gaurav-prasanna/brandpipe/core/render"
	"github.com/gaurav-prasanna/brandpipe/crawl"
	"github.com/gaurav-prasanna/brandpipe/logger"
)

// Flag variables.
var (
	flagJSON      bool
	flagPDF       bool
	flagPosts     bool
	flagNoAI      bool
	flagOutputDir string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze a website and write its brand profile",
	Long: `Analyze fetches the given website plus a handful of its internal pages,
extracts brand signals, and writes the resulting profile.

Examples:
  brandpipe analyze https://example.com
  brandpipe analyze example.com --pdf --output_dir ./out
  brandpipe analyze https://example.com --json --posts
  brandpipe analyze https://example.com --no_ai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output format flags. JSON is the default when neither is given.
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Write the profile as JSON (default)")
	analyzeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Write the profile as a PDF brand sheet")

	analyzeCmd.Flags().BoolVar(&flagPosts, "posts", false, "Also plan a week of post drafts")
	analyzeCmd.Flags().BoolVar(&flagNoAI, "no_ai", false, "Skip AI enrichment for this run")

	analyzeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	seedURL := crawl.EnsureScheme(args[0])
	parsed, err := url.Parse(seedURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.NewSite(fetch.Options{
		PageTimeout:           cfg.PageTimeout,
		StylesheetTimeout:     cfg.StylesheetTimeout,
		MaxInternalPages:      cfg.MaxInternalPages,
		MaxStylesheetsPerPage: cfg.MaxStylesheetsPerPage,
		UserAgent:             cfg.UserAgent,
		Logger:                log,
	})

	var synth *enrich.Client
	if cfg.AIEnabled && !flagNoAI {
		synth = enrich.New(enrich.Config{
			BaseURL: cfg.AIBaseURL,
			Model:   cfg.AIModel,
			Timeout: cfg.AITimeout,
		})
	}

	// A nil *enrich.Client must not reach the orchestrator as a
	// non-nil interface value.
	var synthesizer core.Synthesizer
	if synth != nil {
		synthesizer = synth
	}

	ctx := context.Background()
	profile := pipeline.New(fetcher, synthesizer, log).Extract(ctx, seedURL)

	for _, renderer := range selectRenderers() {
		data, err := renderer.Render(profile)
		if err != nil {
			return fmt.Errorf("rendering profile: %w", err)
		}
		path, err := writer.Write(seedURL, data, renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}

	if flagPosts {
		var captioner core.Captioner
		if synth != nil {
			captioner = synth
		}
		drafts := content.NewPlanner(captioner, log).PlanWeek(ctx, profile)
		data, err := json.MarshalIndent(drafts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling post drafts: %w", err)
		}
		path, err := writer.WriteNamed("posts", seedURL, data, ".json")
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}

	return nil
}

// selectRenderers returns the renderers for the chosen formats.
// With no format flag, JSON is used.
func selectRenderers() []core.ProfileRenderer {
	var renderers []core.ProfileRenderer
	if flagJSON || !flagPDF {
		renderers = append(renderers, render.NewJSONRenderer())
	}
	if flagPDF {
		renderers = append(renderers, render.NewPDFRenderer())
	}
	return renderers
}
