// README: Static mapping tables from user preference tags to Places API vocabularies.
package taxonomy

// baseCategories is always searched regardless of the user's interests.
var baseCategories = []string{"tourist_attraction", "point_of_interest"}

// interestCategories maps a user-facing interest tag to Places API place types.
// Unknown tags are simply ignored by ExpandInterests.
var interestCategories = map[string][]string{
	"culture":      {"museum", "art_gallery", "library"},
	"art":          {"museum", "art_gallery"},
	"nature":       {"park", "natural_feature", "zoo"},
	"shopping":     {"shopping_mall", "department_store"},
	"nightlife":    {"night_club", "bar"},
	"food":         {"restaurant"},
	"beaches":      {"natural_feature"},
	"architecture": {"church", "synagogue", "hindu_temple", "mosque"},
}

// dietaryQueries maps a dietary tag to a restaurant text-search query.
var dietaryQueries = map[string]string{
	"vegetarian":  "vegetarian restaurant",
	"vegan":       "vegan restaurant",
	"halal":       "halal restaurant",
	"kosher":      "kosher restaurant",
	"gluten_free": "gluten free restaurant",
}

// budgetQueries maps a budget level to a restaurant text-search query.
// "none" has no entry on purpose.
var budgetQueries = map[string]string{
	"budget":   "cheap eats",
	"mid":      "mid-range restaurant",
	"luxury":   "fine dining restaurant",
	"flexible": "popular restaurant",
}

// defaultDiningQueries is used when the user gave no dietary or budget preference.
var defaultDiningQueries = []string{"best restaurants", "local cuisine", "popular restaurants"}
