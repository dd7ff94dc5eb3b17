package feeds

import (
	"sort"

	"github.com/samber/lo"

	"futuremodern/models"
)

// Aggregate merges entries from all sources into the final list: sorted by
// publish date, newest first, with undated entries after all dated ones, and
// capped at max. The sort is stable, so entries with equal (or no) dates keep
// their fetch order. The distinct source and category sets are computed over
// the capped list, since that is what the page renders filters for.
func Aggregate(entries []models.Entry, max int) models.Aggregate {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Published, sorted[j].Published
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	if max > 0 && len(sorted) > max {
		sorted = sorted[:max]
	}

	sources := lo.Uniq(lo.Map(sorted, func(e models.Entry, _ int) string { return e.Source }))
	sort.Strings(sources)
	categories := lo.Uniq(lo.Map(sorted, func(e models.Entry, _ int) string { return e.Category }))
	sort.Strings(categories)

	return models.Aggregate{
		Entries:    sorted,
		Sources:    sources,
		Categories: categories,
	}
}
