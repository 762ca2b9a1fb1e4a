package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/poly"
)

type textRequest struct {
	Text string `json:"text"`
}

type operationRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// validationResponse carries Terms and Degree only for valid input, where a
// constant still reports degree 0.
type validationResponse struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Terms  int    `json:"terms,omitempty"`
	Degree *int   `json:"degree,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before committing the status, so an encoding failure
// still produces a 500 with a body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(errorResponse{Error: "failed to encode response"})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
	return err
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, errorResponse{Error: msg})
}

// respond writes v and logs an encoding failure, reporting whether v was
// written.
func (s *Server) respond(w http.ResponseWriter, status int, v any) bool {
	if err := writeJSON(w, status, v); err != nil {
		s.logger.Error("encode response", "err", err)
		return false
	}
	return true
}

// decode reads exactly one JSON object into v, rejecting unknown fields and
// trailing data.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "invalid JSON: trailing data")
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	res := poly.ValidatePolynomial(req.Text)
	resp := validationResponse{Valid: res.Valid, Error: res.Message()}
	if res.Valid {
		resp.Terms = res.TermCount
		resp.Degree = &res.Degree
	}
	s.respond(w, http.StatusOK, resp)
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	if res := poly.ValidatePolynomial(req.Text); !res.Valid {
		writeError(w, http.StatusUnprocessableEntity, res.Message())
		return
	}
	s.respond(w, http.StatusOK, poly.NormalizeText(req.Text))
}

func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request) {
	kind, err := ops.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req operationRequest
	if !s.decode(w, r, &req) {
		return
	}

	if check := s.validator.Validate(req.A, req.B, kind); !check.Valid {
		s.metrics.observeOperation(kind.String(), resultInvalid)
		writeError(w, http.StatusUnprocessableEntity, check.Message())
		return
	}

	out, err := ops.Run(kind, req.A, req.B)
	if errors.Is(err, ops.ErrNonFinite) {
		s.metrics.observeOperation(kind.String(), resultInvalid)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		s.metrics.observeOperation(kind.String(), resultError)
		s.logger.Error("operation failed", "kind", kind, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !s.respond(w, http.StatusOK, out) {
		s.metrics.observeOperation(kind.String(), resultError)
		return
	}
	s.metrics.observeOperation(kind.String(), resultOK)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	limit := poly.DefaultSuggestionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	suggestions := poly.Suggest(r.URL.Query().Get("prefix"), limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	s.respond(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}
