// README: Conversation history types exchanged with the model.
package ai

// Message roles as the Gemini API names them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of an itinerary conversation. The client sends its
// accumulated history back with each chat request, exactly as it received it.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
