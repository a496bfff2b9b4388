package mensafeed

import (
	"fmt"
	"strconv"
	"strings"
)

// Price is a monetary amount in cents. The currency is implied by the canteen.
type Price int64

// String formats the price with two decimals, e.g. "4.20".
func (p Price) String() string {
	sign := ""
	if p < 0 {
		sign, p = "-", -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}

// ParsePrice parses an amount such as "4.20", "4,20" or "4".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, Errorf(EINVALID, "invalid price %q", s)
	}

	units, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, Errorf(EINVALID, "invalid price %q", s)
	}

	var cents uint64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		if cents, err = strconv.ParseUint(frac, 10, 8); err != nil {
			return 0, Errorf(EINVALID, "invalid price %q", s)
		}
	}

	return Price(units*100 + cents), nil
}

// Role is the group of eaters a price applies to.
type Role string

// Role constants as defined by the OpenMensa feed schema.
const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
	RolePupil    Role = "pupil"
	RoleOther    Role = "other"
)

// Roles lists every role in the order prices are emitted.
var Roles = []Role{RoleStudent, RoleEmployee, RolePupil, RoleOther}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployee, RolePupil, RoleOther:
		return true
	}
	return false
}

// Prices maps roles to the price they pay.
type Prices map[Role]Price

// Validate returns an error if a role is unknown or an amount is negative.
func (p Prices) Validate() error {
	for role, price := range p {
		if !role.Valid() {
			return Errorf(EINVALID, "unknown price role %q", role)
		}
		if price < 0 {
			return Errorf(EINVALID, "negative %s price %s", role, price)
		}
	}
	return nil
}

// PriceTable holds the prices of every category plus the weekly special.
type PriceTable struct {
	Meals  map[Category]Prices
	Weekly Prices
}

// StudentPrices returns a table that prices each category for students only.
func StudentPrices(prices map[Category]Price) PriceTable {
	t := PriceTable{Meals: make(map[Category]Prices, len(prices))}
	for c, p := range prices {
		t.Meals[c] = Prices{RoleStudent: p}
	}
	return t
}

// Lookup returns the prices for a record.
// Returns EPRICECONFIG if the table has no entry for the record.
func (t PriceTable) Lookup(r MealRecord) (Prices, error) {
	if r.Weekly {
		if len(t.Weekly) == 0 {
			return nil, Errorf(EPRICECONFIG, "no price configured for the weekly special")
		}
		return t.Weekly, nil
	}
	p := t.Meals[r.Category]
	if len(p) == 0 {
		return nil, Errorf(EPRICECONFIG, "no price configured for category %q", r.Category)
	}
	return p, nil
}

// Validate returns an error unless every category has a price.
func (t PriceTable) Validate() error {
	for _, c := range Categories {
		if len(t.Meals[c]) == 0 {
			return Errorf(EPRICECONFIG, "no price configured for category %q", c)
		}
	}
	for c, p := range t.Meals {
		if !c.Valid() {
			return Errorf(EINVALID, "unknown category %q in price table", c)
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return t.Weekly.Validate()
}
