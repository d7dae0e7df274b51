// README: API gateway; registers HTTP routes and delegates to the planner.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/http/middleware"
	"wayfarer/internal/infra"
)

type ServerDeps struct {
	Planner  handlers.ItineraryPlanner
	Verifier infra.TokenVerifier
	Logger   *zap.Logger
}

type Server struct {
	planner  handlers.ItineraryPlanner
	verifier infra.TokenVerifier
	logger   *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:  deps.Planner,
		verifier: deps.Verifier,
		logger:   deps.Logger,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.Auth(s.verifier))

	h := handlers.NewItineraryHandler(s.planner)
	r.POST("/api/itinerary/generate", h.Generate)
	r.POST("/api/itinerary/chat", h.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}
