// README: Placeholder substitution assembling the final model prompt.
package prompt

import "strings"

// Placeholders recognised in the itinerary template. A template missing one of
// them is legal; the substitution is simply a no-op.
const (
	PlaceholderUserAnswers   = "{formatted_user_answers}"
	PlaceholderCustomRequest = "{custom_user_requests_if_any}"
	PlaceholderLocalContext  = "{local_context_if_any}"
)

// Assemble substitutes the user's formatted answers, any custom request, and
// the rendered destination context into the template. Empty values are valid
// and substitute as empty strings; whether an empty prompt is worth sending to
// the model is the caller's decision.
func Assemble(template, userText, customRequest, renderedContext string) string {
	out := strings.ReplaceAll(template, PlaceholderUserAnswers, userText)
	out = strings.ReplaceAll(out, PlaceholderCustomRequest, customRequest)
	out = strings.ReplaceAll(out, PlaceholderLocalContext, renderedContext)
	return out
}
