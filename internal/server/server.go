package server

import (
	"net/http"
	"time"

	"github.com/lehoangvu-dev/vidbrief/internal/logger"
	"github.com/lehoangvu-dev/vidbrief/internal/pipeline"
	"github.com/lehoangvu-dev/vidbrief/internal/registry"
	"github.com/lehoangvu-dev/vidbrief/internal/tts"
)

// Server exposes the pipeline core over HTTP.
type Server struct {
	mux         *http.ServeMux
	dispatcher  pipeline.Dispatcher
	registry    registry.Registry
	synthesizer tts.Synthesizer
	graceWindow time.Duration
	logger      logger.Logger
}

// New creates a Server routing the public endpoints
func New(
	dispatcher pipeline.Dispatcher,
	reg registry.Registry,
	synthesizer tts.Synthesizer,
	graceWindow time.Duration,
	log logger.Logger,
) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		dispatcher:  dispatcher,
		registry:    reg,
		synthesizer: synthesizer,
		graceWindow: graceWindow,
		logger:      log,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /summarize", s.handleSummarize(pipeline.KindAudio))
	s.mux.HandleFunc("POST /summarize-video", s.handleSummarize(pipeline.KindVideo))
	s.mux.HandleFunc("GET /status/{jobId}", s.handleStatus)
	s.mux.HandleFunc("POST /speak", s.handleSpeak)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
