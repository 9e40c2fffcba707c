package campaign

import (
	"sort"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
)

// sortGroupsNewestFirst orders groups by calendar month. Labels that do not
// parse sort last, alphabetically.
func sortGroupsNewestFirst(groups []domain.MonthGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		ti, erri := time.Parse(domain.MonthLayout, groups[i].Month)
		tj, errj := time.Parse(domain.MonthLayout, groups[j].Month)
		switch {
		case erri == nil && errj == nil:
			return ti.After(tj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return groups[i].Month < groups[j].Month
		}
	})
}
