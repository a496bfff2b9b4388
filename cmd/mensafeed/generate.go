package main

import (
	"fmt"

	"github.com/fwojciec/mensafeed"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	wm, err := loadMenu(deps, c.SourceFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mensafeed.ErrorMessage(err))
		return err
	}

	meta := mensafeed.FeedMetadata{
		Canteen:     deps.Config.Canteen,
		Week:        wm.Week,
		ClosedDays:  wm.Menu.Closed,
		GeneratedAt: deps.Now().UTC(),
		Version:     Version,
	}

	feed, err := deps.Builder.Build(wm.Records, deps.Config.Prices, meta)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mensafeed.ErrorMessage(err))
		return err
	}

	if err := deps.Writer.WriteFeed(deps.Ctx, feed); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing feed: %v\n", err)
		return err
	}

	return nil
}
