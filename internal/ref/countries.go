// Package ref provides the embedded country reference list used for
// destination selection and chart colors. The list is display-only reference
// data; flight records are never validated against it, and a load failure
// degrades the selection UI without blocking record CRUD.
package ref

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed countries.json
var raw []byte

// Country is one reference entry.
type Country struct {
	Name string `json:"name"`
	// Color is the hex color used for this country's chart segments.
	Color string `json:"color"`
}

// Countries is the parsed reference list with an index by exact name.
type Countries struct {
	list   []Country
	byName map[string]Country
}

// Load parses the embedded country list.
func Load() (*Countries, error) {
	var list []Country
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("ref.Load: parse countries.json: %w", err)
	}

	c := &Countries{
		list:   list,
		byName: make(map[string]Country, len(list)),
	}
	for _, country := range list {
		c.byName[country.Name] = country
	}
	return c, nil
}

// List returns all countries in their reference order.
func (c *Countries) List() []Country { return c.list }

// Lookup returns the entry for an exact name match. Record country fields
// are free text, so no normalization or fuzzy matching happens here.
func (c *Countries) Lookup(name string) (Country, bool) {
	country, ok := c.byName[name]
	return country, ok
}
