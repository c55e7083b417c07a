package reddit

import "fmt"

// Sort is one of the five supported listing orderings.
type Sort string

const (
	SortHot           Sort = "hot"
	SortNew           Sort = "new"
	SortControversial Sort = "controversial"
	SortRising        Sort = "rising"
	// SortDefault maps to Reddit's "top" listing.
	SortDefault Sort = "default"
)

// Sorts lists every supported sort in display order.
func Sorts() []Sort {
	return []Sort{SortHot, SortNew, SortControversial, SortRising, SortDefault}
}

// listingPaths is the closed sort-to-endpoint table. Anything not in here is
// rejected before a request is built.
var listingPaths = map[Sort]string{
	SortHot:           "hot",
	SortNew:           "new",
	SortControversial: "controversial",
	SortRising:        "rising",
	SortDefault:       "top",
}

// ParseSort validates a sort key eagerly, ahead of any network action.
func ParseSort(s string) (Sort, error) {
	sort := Sort(s)
	if _, ok := listingPaths[sort]; !ok {
		return "", fmt.Errorf("unknown sort option %q", s)
	}
	return sort, nil
}

// Path returns the listing endpoint segment for the sort.
func (s Sort) Path() (string, error) {
	path, ok := listingPaths[s]
	if !ok {
		return "", fmt.Errorf("unknown sort option %q", string(s))
	}
	return path, nil
}
