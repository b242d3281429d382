package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/analysis"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/fetch"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
)

// listResponse is the payload for GET /analyses. Corruption found while
// loading is surfaced as data, never as a failed request.
type listResponse struct {
	Entries      []types.AnalysisEntry `json:"entries"`
	HadCorrupted bool                  `json:"hadCorrupted"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	jdText := req.JDText
	if strings.TrimSpace(jdText) == "" && req.JobURL != "" {
		fetched, err := fetch.JobText(r.Context(), req.JobURL, nil)
		if err != nil {
			writeError(w, &ErrValidation{Message: err.Error()})
			return
		}
		jdText = fetched
	}
	if strings.TrimSpace(jdText) == "" {
		writeError(w, &ErrValidation{Message: "jdText must not be blank"})
		return
	}

	result := analysis.Analyze(req.Company, req.Role, jdText)
	entry := analysis.NewEntry(result, req.Company, req.Role, jdText, time.Now())

	if err := s.store.Save(r.Context(), entry); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	entries, hadCorrupted, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Entries: entries, HadCorrupted: hadCorrupted})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	entry, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if entry == nil {
		writeError(w, &ErrEntryNotFound{ID: id})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleUpdateConfidence(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req types.ConfidenceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	entry, err := s.store.SetConfidence(r.Context(), id, req.Skill, types.Confidence(req.Confidence))
	if err != nil {
		writeError(w, err)
		return
	}
	if entry == nil {
		writeError(w, &ErrEntryNotFound{ID: id})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
