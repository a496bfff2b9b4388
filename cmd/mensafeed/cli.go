package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mensafeed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Config    *mensafeed.Config
	Fetcher   mensafeed.Fetcher
	Extractor mensafeed.Extractor
	Weeks     mensafeed.WeekResolver
	Builder   mensafeed.FeedBuilder
	Writer    mensafeed.FeedWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Configuration file (default: built-in configuration)"`

	Generate      GenerateCmd      `cmd:"" help:"Generate the feed for the week on the menu page"`
	Preview       PreviewCmd       `cmd:"" help:"Print the extracted menu with prices"`
	DefaultConfig DefaultConfigCmd `cmd:"" name:"default-config" help:"Print the built-in configuration"`
}

// SourceFlags select where the menu page comes from.
type SourceFlags struct {
	URL             string        `short:"u" help:"Menu page URL (overrides the configuration)"`
	Input           string        `short:"i" help:"Read the menu page from a file instead of fetching it"`
	Render          bool          `short:"r" help:"Render the page in headless Chrome before extracting"`
	Timeout         time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	DefaultCategory string        `default:"non_vegetarian" enum:"none,non_vegetarian,vegetarian,vegan" help:"Category of meals without a label (${enum})"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	SourceFlags `embed:""`

	Output string `short:"o" help:"Output path, - for stdout (overrides the configuration)"`
	Format string `short:"f" default:"xml" enum:"xml,ics" help:"Feed format (${enum})"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	SourceFlags `embed:""`
}

// DefaultConfigCmd is the "default-config" subcommand.
type DefaultConfigCmd struct{}
