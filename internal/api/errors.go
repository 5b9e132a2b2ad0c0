package api

import (
	"net/http"

	"github.com/atelierlabs/atelier/internal/engine"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeRuleError maps engine rejections to HTTP statuses. Rule rejections
// are conflicts with the game state, not malformed requests, except for
// invalid targets.
func (s *Server) writeRuleError(w http.ResponseWriter, err error) {
	re, ok := engine.AsRule(err)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	status := http.StatusConflict
	if re.Kind == engine.KindInvalidTarget {
		status = http.StatusBadRequest
	}
	s.writeError(w, status, string(re.Kind), re.Message)
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind, message string) {
	s.writeJSON(w, status, errorResponse{Error: errorBody{Kind: kind, Message: message}})
}
