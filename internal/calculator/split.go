package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// centPlaces is the precision shares are rounded to.
const centPlaces = 2

// SplitEqually divides total among participants so that every share is a whole
// number of cents and the shares add up to total exactly.
//
// Algorithm:
// - work in whole cents: base = cents / n, remainder = cents % n
// - the remainder is handed out one cent at a time
// - leftover cents go to participants in ascending ID order, so the result does
//   not depend on the order the caller listed them in
func SplitEqually(total decimal.Decimal, participants []string) (map[string]decimal.Decimal, error) {
	if !total.IsPositive() {
		return nil, fmt.Errorf("total must be positive, got %s", total)
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}
	if !total.Equal(total.Truncate(centPlaces)) {
		return nil, fmt.Errorf("total %s has more than %d decimal places", total, centPlaces)
	}

	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return nil, fmt.Errorf("participant %q listed more than once", p)
		}
		seen[p] = true
	}

	n := int64(len(participants))
	cents := total.Shift(centPlaces).IntPart()
	base := decimal.New(cents/n, -centPlaces)
	remainder := cents % n
	cent := decimal.New(1, -centPlaces)

	ordered := append([]string(nil), participants...)
	sort.Strings(ordered)

	shares := make(map[string]decimal.Decimal, len(participants))
	for _, p := range ordered {
		share := base
		if remainder > 0 {
			share = share.Add(cent)
			remainder--
		}
		shares[p] = share
	}
	return shares, nil
}
