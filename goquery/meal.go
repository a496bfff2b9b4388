package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mensafeed"
)

var (
	// markerRe matches an inline category marker such as "(vegan)".
	markerRe = regexp.MustCompile(`(?i)\(\s*(` + labelPattern() + `)\s*\)`)

	// prefixRe matches a leading category label such as "Vegetarisch: " or
	// "Vegan - ". A hyphen directly attached, as in "Vegan-Burger", is part
	// of the meal name.
	prefixRe = regexp.MustCompile(`(?i)^(` + labelPattern() + `)(?:\s*:|\s+[–-])\s*(.*)$`)

	// allergenRe matches trailing allergen codes such as "A, C, G".
	allergenRe = regexp.MustCompile(`\b([A-Z](?:\s*,\s*[A-Z])*)\s*$`)

	parenRe  = regexp.MustCompile(`\s*\([^)]*\)`)
	bulletRe = regexp.MustCompile(`^[\x{2022}\x{00B7}*–\-\s]*(?:\d+[.)]\s+)?`)
)

// labelPattern builds a regexp alternation from mensafeed.CategoryLabels,
// keeping their longest-first order.
func labelPattern() string {
	alts := make([]string, 0, len(mensafeed.CategoryLabels))
	for _, l := range mensafeed.CategoryLabels {
		alts = append(alts, strings.ReplaceAll(regexp.QuoteMeta(l.Text), " ", `\s+`))
	}
	return strings.Join(alts, "|")
}

// parseMeal turns a menu line into a record without weekday.
// block is the category of the enclosing block, if any.
// It returns false if no category can be determined.
func (e *Extractor) parseMeal(line string, block mensafeed.Category) (mensafeed.MealRecord, bool) {
	line = collapse(bulletRe.ReplaceAllString(collapse(line), ""))

	category, name := splitCategory(line)
	if category == "" {
		category = block
	}
	if category == "" {
		category = e.defaultCategory
	}
	if category == "" {
		return mensafeed.MealRecord{}, false
	}

	name, allergens := splitAllergens(name)
	return mensafeed.MealRecord{
		Category:    category,
		Description: name,
		Allergens:   allergens,
	}, true
}

// isClosedLine reports whether line is a closed notice rather than a meal.
// Lines carrying their own category label are always meals.
func isClosedLine(line string) bool {
	if !mensafeed.IsClosedNotice(line) {
		return false
	}
	category, _ := splitCategory(collapse(bulletRe.ReplaceAllString(collapse(line), "")))
	return category == ""
}

// splitCategory extracts an inline category label from line. Parenthesised
// text is dropped along with an inline marker.
func splitCategory(line string) (mensafeed.Category, string) {
	if m := markerRe.FindStringSubmatch(line); m != nil {
		c, _ := mensafeed.MatchCategoryLabel(collapse(m[1]))
		return c, collapse(parenRe.ReplaceAllString(line, ""))
	}
	if m := prefixRe.FindStringSubmatch(line); m != nil {
		c, _ := mensafeed.MatchCategoryLabel(collapse(m[1]))
		return c, strings.TrimSpace(m[2])
	}
	return "", line
}

// splitAllergens removes trailing allergen codes from name.
func splitAllergens(name string) (string, []string) {
	loc := allergenRe.FindStringSubmatchIndex(name)
	if loc == nil {
		return name, nil
	}

	var allergens []string
	for _, code := range strings.Split(name[loc[2]:loc[3]], ",") {
		allergens = append(allergens, strings.TrimSpace(code))
	}
	name = strings.TrimRight(name[:loc[0]], " ,;–-")
	return name, allergens
}
