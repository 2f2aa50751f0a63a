// Package catalog provides the static reference catalog the rule validator
// consults: item-number patterns per category, optional allowed-value sets,
// and known reference items loaded from CSV.
//
// A Catalog is built once at process start and never mutated afterwards, so
// concurrent validation runs can read it without synchronization.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// builtinPatterns maps a category to the item-number format accepted for it.
// The families mirror the shipped reference data: PCB-X7700, IC-8085,
// CAP-3300-10V, RES-2K-0.25W, DIODE-1N4001, CONN-DB9-F.
var builtinPatterns = map[string]string{
	"Electronics": `^(?:PCB-[A-Z]\d{4}|IC-\d{4}[A-Z]?)$`,
	"Components":  `^(?:CAP-\d{4}-\d{1,3}V|RES-\d+[KM]?-\d+\.\d+W|DIODE-\d{1}N\d{4})$`,
	"Connectors":  `^CONN-[A-Z0-9]+-[MF]$`,
}

// ReferenceItem is one row of reference data: a known-good item number with
// its description and category.
type ReferenceItem struct {
	ItemNumber  string
	Description string
	Category    string
}

// Catalog is an immutable lookup of category patterns and known items.
type Catalog struct {
	patterns  map[string]*regexp.Regexp
	allowed   map[string]map[string]struct{}
	reference map[string]ReferenceItem
}

// New compiles a catalog from category patterns and optional per-category
// allowed item-number sets.
func New(patterns map[string]string, allowed map[string][]string) (*Catalog, error) {
	c := &Catalog{
		patterns:  make(map[string]*regexp.Regexp, len(patterns)),
		allowed:   make(map[string]map[string]struct{}, len(allowed)),
		reference: make(map[string]ReferenceItem),
	}

	for category, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for category %q: %w", category, err)
		}
		c.patterns[category] = re
	}

	for category, values := range allowed {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		c.allowed[category] = set
	}

	return c, nil
}

// Default returns a catalog built from the bundled category patterns.
func Default() *Catalog {
	c, err := New(builtinPatterns, nil)
	if err != nil {
		// Bundled patterns are compile-time constants.
		panic(fmt.Sprintf("bundled catalog patterns failed to compile: %v", err))
	}
	return c
}

// PatternFor returns the item-number pattern registered for a category, if any.
func (c *Catalog) PatternFor(category string) (*regexp.Regexp, bool) {
	re, ok := c.patterns[category]
	return re, ok
}

// Allowed reports whether the item number is in the category's allowed-value
// set. The second return tells whether the category has such a set at all.
func (c *Catalog) Allowed(category, itemNumber string) (bool, bool) {
	set, ok := c.allowed[category]
	if !ok {
		return false, false
	}
	_, member := set[itemNumber]
	return member, true
}

// KnownItem reports whether the item number appears in the loaded reference data.
func (c *Catalog) KnownItem(itemNumber string) bool {
	_, ok := c.reference[itemNumber]
	return ok
}

// ReferenceCount returns the number of loaded reference items.
func (c *Catalog) ReferenceCount() int {
	return len(c.reference)
}

// Categories returns the category names with a registered pattern.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.patterns))
	for name := range c.patterns {
		names = append(names, name)
	}
	return names
}

// prefixOf extracts the item-number family prefix, e.g. "CONN" from "CONN-DB9-F".
func prefixOf(itemNumber string) string {
	if i := strings.Index(itemNumber, "-"); i > 0 {
		return itemNumber[:i]
	}
	return ""
}
