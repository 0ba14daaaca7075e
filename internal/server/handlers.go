package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lehoangvu-dev/vidbrief/internal/pipeline"
)

type summarizeRequest struct {
	SourceRef string `json:"sourceRef"`
}

type summarizeResponse struct {
	Message   string `json:"message"`
	JobID     string `json:"jobId"`
	StatusURL string `json:"statusUrl"`
}

type speakRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSummarize(kind pipeline.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, http.StatusBadRequest, "sourceRef is required")
			return
		}

		id, err := s.dispatcher.Submit(r.Context(), req.SourceRef, kind)
		if err != nil {
			if errors.Is(err, pipeline.ErrMissingSource) {
				s.writeError(w, r, http.StatusBadRequest, "sourceRef is required")
				return
			}
			s.logger.Error(r.Context(), "submit failed: %v", err)
			s.writeError(w, r, http.StatusInternalServerError, "failed to start job")
			return
		}

		s.writeJSON(w, r, http.StatusAccepted, summarizeResponse{
			Message:   "summarization started",
			JobID:     id,
			StatusURL: "/status/" + id,
		})
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("jobId")

	rec, ok := s.registry.Get(id)
	if !ok {
		s.writeError(w, r, http.StatusNotFound, "job not found")
		return
	}

	// First observation of a terminal state starts the grace window; the
	// record stays pollable until it elapses.
	if rec.Status.Terminal() {
		s.registry.ScheduleExpiry(id, s.graceWindow)
	}

	s.writeJSON(w, r, http.StatusOK, rec)
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		s.writeError(w, r, http.StatusBadRequest, "text is required")
		return
	}

	audio, err := s.synthesizer.Synthesize(r.Context(), req.Text)
	if err != nil {
		s.logger.Error(r.Context(), "speech synthesis failed: %v", err)
		s.writeError(w, r, http.StatusInternalServerError, "speech synthesis failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mp3")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		s.logger.Warn(r.Context(), "write audio response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn(r.Context(), "write response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, errorResponse{Error: msg})
}
