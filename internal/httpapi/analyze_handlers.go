package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jhruska/callsight/internal/crm"
	"github.com/jhruska/callsight/internal/extraction"
	"github.com/jhruska/callsight/internal/scenarios"
)

type analyzeRequest struct {
	Transcript string `json:"transcript"`
	ScenarioID string `json:"scenarioId"`
}

// handleAnalyze runs the schema-constrained extraction. The UI sends either a
// raw transcript or a scenario id; a raw transcript wins when both are set.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	var body analyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	transcript := body.Transcript
	if transcript == "" && body.ScenarioID != "" {
		sc, ok := scenarios.ByID(body.ScenarioID)
		if !ok {
			http.Error(w, `{"error": "scenario not found"}`, http.StatusNotFound)
			return
		}
		transcript = sc.Transcript
	}
	if strings.TrimSpace(transcript) == "" {
		http.Error(w, `{"error": "transcript is required"}`, http.StatusBadRequest)
		return
	}

	analysis, err := r.analyzer.Analyze(req.Context(), transcript)
	if err != nil {
		r.writeAnalyzeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis":   analysis,
		"scenarioId": body.ScenarioID,
	})
}

// writeAnalyzeError maps extraction failures onto HTTP statuses. The
// classified message goes into the payload so the UI has something
// actionable to show; nothing is swallowed.
func (r *Router) writeAnalyzeError(w http.ResponseWriter, req *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, extraction.ErrNotConfigured):
		status = http.StatusServiceUnavailable
	case errors.Is(err, extraction.ErrTruncated):
		status = http.StatusUnprocessableEntity
	}

	r.logger.Printf("analyze: %v", err)
	captureError(req, err, "transcript analysis failed")
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

type completeRequest struct {
	ScenarioID string              `json:"scenarioId"`
	Analysis   extraction.Analysis `json:"analysis"`
}

// handleComplete takes the human-reviewed analysis back and emits the mock
// CRM record plus the follow-up email draft.
func (r *Router) handleComplete(w http.ResponseWriter, req *http.Request) {
	var body completeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if body.Analysis.Summary == "" && body.Analysis.PrimaryIntent == "" {
		http.Error(w, `{"error": "analysis is required"}`, http.StatusBadRequest)
		return
	}

	record := crm.NewRecord(body.ScenarioID, body.Analysis)
	email := crm.ComposeFollowUp(body.Analysis)

	writeJSON(w, http.StatusOK, map[string]any{
		"record": record,
		"email":  email,
	})
}
