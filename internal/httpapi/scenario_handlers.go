package httpapi

import (
	"net/http"

	"github.com/jhruska/callsight/internal/extraction"
	"github.com/jhruska/callsight/internal/scenarios"
)

func (r *Router) handleListScenarios(w http.ResponseWriter, _ *http.Request) {
	list := scenarios.All()
	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": list,
		"count":     len(list),
	})
}

func (r *Router) handleGetScenario(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")
	if id == "" {
		http.Error(w, `{"error": "missing scenario ID"}`, http.StatusBadRequest)
		return
	}

	sc, ok := scenarios.ByID(id)
	if !ok {
		http.Error(w, `{"error": "scenario not found"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"scenario": sc})
}

func (r *Router) handleGetSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":   extraction.SchemaName,
		"schema": extraction.AnalysisSchema(),
	})
}
