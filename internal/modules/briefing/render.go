// README: Flattening of a ContextBundle into model-prompt text.
package briefing

import (
	"fmt"
	"strings"
)

// NoContextMessage is rendered when every clause of the bundle is empty.
const NoContextMessage = "Local context not available."

const (
	renderedAttractions = 8
	renderedRestaurants = 6
)

// Render flattens the bundle into a single line of prompt context. Clauses
// with no source data are omitted entirely; an all-empty bundle renders the
// fixed fallback message. Rendering is pure, so identical bundles always
// produce identical text.
func (b ContextBundle) Render() string {
	var parts []string

	if b.Place != nil && b.Place.Name != "" {
		line := "Destination: " + b.Place.Name
		if b.Place.FormattedAddress != "" {
			line += " is located at " + b.Place.FormattedAddress
		}
		if b.Place.Rating > 0 {
			line += fmt.Sprintf(" (Rating: %.1f/5)", b.Place.Rating)
		}
		parts = append(parts, line+".")
	}

	if len(b.Attractions) > 0 {
		names := make([]string, 0, renderedAttractions)
		for _, a := range b.Attractions {
			if len(names) == renderedAttractions {
				break
			}
			names = append(names, a.Name)
		}
		parts = append(parts, "Highly-rated attractions nearby: "+strings.Join(names, ", ")+".")
	}

	if len(b.Restaurants) > 0 {
		entries := make([]string, 0, renderedRestaurants)
		for _, r := range b.Restaurants {
			if len(entries) == renderedRestaurants {
				break
			}
			entries = append(entries, fmt.Sprintf("%s (%.1f★%s)", r.Name, r.Rating, priceIndicator(r.PriceLevel)))
		}
		parts = append(parts, "Recommended restaurants: "+strings.Join(entries, ", ")+".")
	}

	if len(parts) == 0 {
		return NoContextMessage
	}
	return strings.Join(parts, " ")
}

// priceIndicator renders a price level as a run of dollar signs, clamped to
// 1..4. Level zero means unknown and renders nothing.
func priceIndicator(level int) string {
	if level <= 0 {
		return ""
	}
	if level > 4 {
		level = 4
	}
	return " " + strings.Repeat("$", level)
}
