package mensafeed

// Config is the configuration of a feed run.
type Config struct {
	// SourceURL is the menu page to fetch.
	SourceURL string

	// Output is the path the feed is written to. "-" writes to stdout.
	Output string

	Canteen Canteen
	Prices  PriceTable
}

// Validate returns an error if the configuration is incomplete.
func (c *Config) Validate() error {
	if c.Canteen.Name == "" {
		return Errorf(EINVALID, "canteen name required")
	}
	return c.Prices.Validate()
}
