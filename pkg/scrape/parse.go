package scrape

import (
	"regexp"
	"sort"
)

// The storefront renders item IDs as 4-digit numbers in parentheses, e.g. "(1234)".
var idPattern = regexp.MustCompile(`\((\d{4})\)`)

// ExtractIDs pulls all item IDs out of a page's HTML.
// The result is de-duplicated and sorted ascending.
func ExtractIDs(html string) []string {
	matches := idPattern.FindAllStringSubmatch(html, -1)
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		seen[m[1]] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MergeIDs combines two ID sets into a sorted, de-duplicated slice.
func MergeIDs(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		seen[id] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
