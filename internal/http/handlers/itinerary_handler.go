// README: Itinerary generation and chat handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/ai"
	"wayfarer/internal/http/middleware"
	"wayfarer/internal/service"
)

// generateTimeout bounds one full pipeline run including the model call.
const generateTimeout = 60 * time.Second

// ItineraryPlanner is the slice of *service.Planner the handlers use.
type ItineraryPlanner interface {
	Generate(ctx context.Context, uid string, req service.PlanRequest) (string, error)
	Chat(ctx context.Context, uid, message string, history []ai.Message) (string, []ai.Message, error)
}

type ItineraryHandler struct {
	planner ItineraryPlanner
}

func NewItineraryHandler(planner ItineraryPlanner) *ItineraryHandler {
	return &ItineraryHandler{planner: planner}
}

type generateReq struct {
	Destination   string         `json:"destination"`
	Prompt        string         `json:"prompt"`
	CustomRequest string         `json:"custom_request"`
	Interests     []string       `json:"interests"`
	Dietary       []string       `json:"dietary"`
	Budget        string         `json:"budget"`
	Answers       map[string]any `json:"answers"`
}

// Generate handles POST /api/itinerary/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if req.Prompt == "" {
		writeError(c, http.StatusBadRequest, "missing prompt")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	itinerary, err := h.planner.Generate(ctx, middleware.CallerUID(c), service.PlanRequest{
		Destination:   req.Destination,
		Prompt:        req.Prompt,
		CustomRequest: req.CustomRequest,
		Interests:     req.Interests,
		Dietary:       req.Dietary,
		Budget:        req.Budget,
		Answers:       req.Answers,
	})
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"itinerary": itinerary})
}

type chatReq struct {
	Message string       `json:"message"`
	History []ai.Message `json:"history"`
}

// Chat handles POST /api/itinerary/chat.
func (h *ItineraryHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	reply, history, err := h.planner.Chat(ctx, middleware.CallerUID(c), req.Message, req.History)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"reply": reply, "history": history})
}
