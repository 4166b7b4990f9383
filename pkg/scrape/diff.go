package scrape

import "sort"

// Sold returns the IDs present in the previous snapshot but missing from the
// current one, sorted ascending. An item leaving the storefront is treated as sold.
func Sold(previous, current *Snapshot) []string {
	if previous == nil || current == nil {
		return nil
	}

	curr := make(map[string]struct{}, len(current.IDs))
	for _, id := range current.IDs {
		curr[id] = struct{}{}
	}

	var sold []string
	for _, id := range previous.IDs {
		if _, ok := curr[id]; !ok {
			sold = append(sold, id)
		}
	}
	sort.Strings(sold)
	return sold
}
