package mensafeed

import (
	"context"
	"time"
)

// Canteen describes the canteen a feed is published for.
type Canteen struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Location     *Location `json:"location"`
	Availability string    `json:"availability"`

	// Feed describes where the generated feed is published, for consumers
	// that fetch it on a schedule. Optional.
	Feed *FeedSource `json:"feed"`
}

// Availability constants.
const (
	AvailabilityPublic     = "public"
	AvailabilityRestricted = "restricted"
)

// Location is a geographic position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FeedSource describes a published feed.
type FeedSource struct {
	Name     string    `json:"name"`
	Priority int       `json:"priority"`
	URL      string    `json:"url"`
	Source   string    `json:"source"`
	Schedule *Schedule `json:"schedule"`
}

// Schedule is a cron-like fetch schedule. Empty fields are omitted.
type Schedule struct {
	DayOfMonth string `json:"dayOfMonth"`
	DayOfWeek  string `json:"dayOfWeek"`
	Month      string `json:"month"`
	Hour       string `json:"hour"`
	Minute     string `json:"minute"`
	Retry      string `json:"retry"`
}

// FeedMetadata is the static information a feed is built with.
type FeedMetadata struct {
	Canteen Canteen

	// Week maps weekdays of the menu to calendar dates.
	// The feed is valid from its Monday through its Sunday.
	Week Week

	// ClosedDays lists weekdays the source marks as closed. A closed day
	// without meals is rendered as closed; other days without meals are
	// left out of the feed.
	ClosedDays []time.Weekday

	// GeneratedAt is the feed timestamp. Optional.
	GeneratedAt time.Time

	// Version identifies the generator. Optional.
	Version string
}

// Validate returns an error if the metadata contains invalid fields.
func (m *FeedMetadata) Validate() error {
	if m.Canteen.Name == "" {
		return Errorf(EINVALID, "canteen name required")
	}
	if m.Week.IsZero() {
		return Errorf(EINVALID, "feed week required")
	}
	switch m.Canteen.Availability {
	case "", AvailabilityPublic, AvailabilityRestricted:
	default:
		return Errorf(EINVALID, "unknown canteen availability %q", m.Canteen.Availability)
	}
	if f := m.Canteen.Feed; f != nil {
		if f.Name == "" {
			return Errorf(EINVALID, "feed name required")
		}
		if f.URL == "" {
			return Errorf(EINVALID, "feed %q: url required", f.Name)
		}
	}
	return nil
}

// FeedBuilder renders meal records as a feed document.
type FeedBuilder interface {
	// Build groups records by weekday, prices them and returns the document.
	// Returns EPRICECONFIG if a record's category has no price; nothing is
	// rendered in that case.
	Build(records []MealRecord, prices PriceTable, meta FeedMetadata) (string, error)
}

// FeedWriter publishes a rendered feed.
type FeedWriter interface {
	WriteFeed(ctx context.Context, feed string) error
}
