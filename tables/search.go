package tables

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"lantern/types"
)

var (
	ErrEmptyQuery = errors.New("empty location name")
	ErrNoMatch    = errors.New("no locations match")
)

// AmbiguousError is returned by Resolve when a query fits more than one location.
type AmbiguousError struct {
	Query   string
	Matches []*types.Location
}

func (e *AmbiguousError) Error() string {
	names := make([]string, 0, len(e.Matches))
	for _, m := range e.Matches {
		names = append(names, m.Name)
	}
	return fmt.Sprintf("%q is ambiguous: could be any of {%v}", e.Query, strings.Join(names, ", "))
}

// RegionGroup is a region name plus the locations in it, in catalog order.
type RegionGroup struct {
	Region    string
	Locations []*types.Location
}

// fold lowercases in a way that also copes with non-ASCII names.
// A Caser keeps state, so every call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Search returns every location whose name contains query, ignoring case.
// An empty query matches everything.
func Search(query string) []*types.Location {
	q := fold(query)
	out := []*types.Location{}
	for i := range catalog {
		if strings.Contains(fold(catalog[i].Name), q) {
			out = append(out, &catalog[i])
		}
	}
	return out
}

// name matching functions, in strictly increasing order of desperation
var tiers = []func(query string, name string) bool{
	func(q string, n string) bool { return q == n },
	func(q string, n string) bool { return strings.Contains(n, q) },
}

// Resolve turns a user-supplied name into exactly one location.
// The first tier that matches anything decides the outcome, so "cathedral ward" picks
// Cathedral Ward even though Upper Cathedral Ward also contains it.
func Resolve(query string) (*types.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	q := fold(query)
	for _, match := range tiers {
		matches := []*types.Location{}
		for i := range catalog {
			if match(q, fold(catalog[i].Name)) {
				matches = append(matches, &catalog[i])
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			return nil, &AmbiguousError{Query: query, Matches: matches}
		}
		return matches[0], nil
	}

	return nil, fmt.Errorf("%w %q", ErrNoMatch, query)
}

// GroupByRegion groups locations by region.
// Regions come out in the order they are first seen, and locations keep their relative order.
// Regions with nothing in them never appear.
func GroupByRegion(locs []*types.Location) []RegionGroup {
	groups := []RegionGroup{}
	index := map[string]int{}
	for _, l := range locs {
		i, ok := index[l.Region]
		if !ok {
			i = len(groups)
			index[l.Region] = i
			groups = append(groups, RegionGroup{Region: l.Region})
		}
		groups[i].Locations = append(groups[i].Locations, l)
	}
	return groups
}

// Regions lists catalog regions in display order.
func Regions() []string {
	out := []string{}
	for _, g := range GroupByRegion(Search("")) {
		out = append(out, g.Region)
	}
	return out
}

// Count totals the locations in a grouped view.
func Count(groups []RegionGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Locations)
	}
	return n
}

// At returns the i-th location of a grouped view, counting across groups.
func At(groups []RegionGroup, i int) (*types.Location, bool) {
	if i < 0 {
		return nil, false
	}
	for _, g := range groups {
		if i < len(g.Locations) {
			return g.Locations[i], true
		}
		i -= len(g.Locations)
	}
	return nil, false
}
