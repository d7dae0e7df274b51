// README: Expansion of user preference tags into provider search vocabularies.
package taxonomy

const (
	// MaxCategories caps how many place categories one request may search.
	MaxCategories = 6
	// MaxDiningQueries caps how many restaurant text searches one request may issue.
	MaxDiningQueries = 4
)

// ExpandInterests turns a list of interest tags into an ordered list of Places API
// categories. The base categories come first, then the mapped categories in the
// caller-supplied tag order. Duplicates keep their first position; the result is
// capped at MaxCategories. Unknown tags are ignored.
func ExpandInterests(interests []string) []string {
	combined := make([]string, 0, len(baseCategories)+len(interests)*3)
	combined = append(combined, baseCategories...)
	for _, tag := range interests {
		combined = append(combined, interestCategories[tag]...)
	}
	return truncate(dedupStable(combined), MaxCategories)
}

// ExpandDiningQueries turns dietary tags plus a budget level into restaurant search
// queries, in that order. When neither yields anything the fixed default queries are
// used. The result is capped at MaxDiningQueries.
func ExpandDiningQueries(dietary []string, budget string) []string {
	var queries []string
	for _, tag := range dietary {
		if tag == "none" {
			continue
		}
		if q, ok := dietaryQueries[tag]; ok {
			queries = append(queries, q)
		}
	}
	if q, ok := budgetQueries[budget]; ok {
		queries = append(queries, q)
	}
	if len(queries) == 0 {
		queries = append(queries, defaultDiningQueries...)
	}
	return truncate(dedupStable(queries), MaxDiningQueries)
}

// dedupStable removes duplicates while preserving first-seen order.
func dedupStable(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func truncate(values []string, max int) []string {
	if len(values) > max {
		return values[:max]
	}
	return values
}
