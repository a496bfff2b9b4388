package mensafeed

import "strings"

// Category is the dietary classification of a meal.
type Category string

// Category constants.
const (
	NonVegetarian Category = "non_vegetarian"
	Vegetarian    Category = "vegetarian"
	Vegan         Category = "vegan"
)

// Categories lists every category in display order.
var Categories = []Category{NonVegetarian, Vegetarian, Vegan}

// CategoryLabel maps label text found on the menu page to a category.
type CategoryLabel struct {
	Text     string
	Category Category
}

// CategoryLabels is the table of known label variants, matched
// case-insensitively. Longer labels come first so that "nicht vegetarisch"
// wins over "vegetarisch" when searching inside text.
var CategoryLabels = []CategoryLabel{
	{Text: "nicht vegetarisch", Category: NonVegetarian},
	{Text: "vegan/vegetarisch", Category: Vegan},
	{Text: "vegetarisch", Category: Vegetarian},
	{Text: "vegan", Category: Vegan},
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case NonVegetarian, Vegetarian, Vegan:
		return true
	}
	return false
}

// Label returns the German display name of the category.
func (c Category) Label() string {
	switch c {
	case NonVegetarian:
		return "Nicht Vegetarisch"
	case Vegetarian:
		return "Vegetarisch"
	case Vegan:
		return "Vegan"
	}
	return string(c)
}

// ParseCategory parses a category identifier such as "vegan".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", Errorf(EINVALID, "unknown category %q", s)
	}
	return c, nil
}

// MatchCategoryLabel reports the category whose label equals text, ignoring
// case, surrounding whitespace and a trailing colon.
func MatchCategoryLabel(text string) (Category, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimSuffix(text, ":"))
	for _, l := range CategoryLabels {
		if strings.EqualFold(text, l.Text) {
			return l.Category, true
		}
	}
	return "", false
}
