// README: Handler tests for itinerary generation and chat.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/ai"
	"wayfarer/internal/http/handlers"
	httpmiddleware "wayfarer/internal/http/middleware"
	"wayfarer/internal/infra"
	"wayfarer/internal/service"
)

// stubPlanner is a test double for handlers.ItineraryPlanner.
type stubPlanner struct {
	itinerary string
	reply     string
	err       error
	lastUID   string
	lastReq   service.PlanRequest
}

func (s *stubPlanner) Generate(_ context.Context, uid string, req service.PlanRequest) (string, error) {
	s.lastUID = uid
	s.lastReq = req
	return s.itinerary, s.err
}

func (s *stubPlanner) Chat(_ context.Context, uid, message string, history []ai.Message) (string, []ai.Message, error) {
	s.lastUID = uid
	if s.err != nil {
		return "", nil, s.err
	}
	updated := append(append([]ai.Message{}, history...),
		ai.Message{Role: ai.RoleUser, Text: message},
		ai.Message{Role: ai.RoleModel, Text: s.reply})
	return s.reply, updated, nil
}

// stubTokenVerifier is a test double for infra.TokenVerifier.
type stubTokenVerifier struct {
	token *infra.FirebaseToken
	err   error
}

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return s.token, s.err
}

func buildTestRouter(planner handlers.ItineraryPlanner, verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpmiddleware.Auth(verifier))
	h := handlers.NewItineraryHandler(planner)
	r.POST("/api/itinerary/generate", h.Generate)
	r.POST("/api/itinerary/chat", h.Chat)
	return r
}

func doRequest(r *gin.Engine, path string, body any, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_OK(t *testing.T) {
	planner := &stubPlanner{itinerary: "Day 1: Louvre"}
	r := buildTestRouter(planner, &stubTokenVerifier{token: &infra.FirebaseToken{UID: "traveler1"}})
	w := doRequest(r, "/api/itinerary/generate", map[string]any{
		"destination": "Paris",
		"prompt":      "3 days, art focus",
		"interests":   []string{"art"},
		"budget":      "mid",
	}, "Bearer goodtoken")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Day 1: Louvre") {
		t.Errorf("itinerary missing from body: %s", w.Body.String())
	}
	if planner.lastUID != "traveler1" {
		t.Errorf("uid = %q, want traveler1", planner.lastUID)
	}
	if planner.lastReq.Destination != "Paris" || planner.lastReq.Budget != "mid" {
		t.Errorf("request = %+v", planner.lastReq)
	}
}

func TestGenerate_AnonymousAllowed(t *testing.T) {
	planner := &stubPlanner{itinerary: "plan"}
	r := buildTestRouter(planner, &stubTokenVerifier{err: errors.New("unused")})
	w := doRequest(r, "/api/itinerary/generate", map[string]any{
		"destination": "Rome",
		"prompt":      "weekend",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if planner.lastUID != "" {
		t.Errorf("anonymous request carried uid %q", planner.lastUID)
	}
}

func TestGenerate_MissingDestination(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubTokenVerifier{})
	w := doRequest(r, "/api/itinerary/generate", map[string]any{"prompt": "weekend"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_MissingPrompt(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubTokenVerifier{})
	w := doRequest(r, "/api/itinerary/generate", map[string]any{"destination": "Rome", "prompt": "  "}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_EmptyPromptErrorMapsTo400(t *testing.T) {
	planner := &stubPlanner{err: service.ErrEmptyPrompt}
	r := buildTestRouter(planner, &stubTokenVerifier{})
	w := doRequest(r, "/api/itinerary/generate", map[string]any{"destination": "Rome", "prompt": "x"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_PlannerFailure(t *testing.T) {
	planner := &stubPlanner{err: errors.New("model down")}
	r := buildTestRouter(planner, &stubTokenVerifier{})
	w := doRequest(r, "/api/itinerary/generate", map[string]any{"destination": "Rome", "prompt": "x"}, "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "model down") {
		t.Errorf("internal error detail leaked: %s", w.Body.String())
	}
}

func TestChat_OK(t *testing.T) {
	planner := &stubPlanner{reply: "Added a beach day."}
	r := buildTestRouter(planner, &stubTokenVerifier{token: &infra.FirebaseToken{UID: "traveler1"}})
	w := doRequest(r, "/api/itinerary/chat", map[string]any{
		"message": "add a beach day",
		"history": []ai.Message{{Role: ai.RoleUser, Text: "Plan Lisbon"}},
	}, "Bearer goodtoken")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Reply   string       `json:"reply"`
		History []ai.Message `json:"history"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply != "Added a beach day." {
		t.Errorf("reply = %q", resp.Reply)
	}
	if len(resp.History) != 3 {
		t.Errorf("history = %d turns, want 3", len(resp.History))
	}
}

func TestChat_MissingMessage(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubTokenVerifier{})
	w := doRequest(r, "/api/itinerary/chat", map[string]any{"message": ""}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
