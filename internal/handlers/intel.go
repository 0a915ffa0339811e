package handlers

import (
	"DarkScope/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// IntelHandler обрабатывает /api/scan и /api/query.
type IntelHandler struct {
	ScanService  *service.ScanService
	QueryService *service.QueryService
	Logger       *zap.SugaredLogger
}

// NewIntelHandler создаёт хендлер intel-заглушек.
func NewIntelHandler(scan *service.ScanService, query *service.QueryService, logger *zap.SugaredLogger) *IntelHandler {
	return &IntelHandler{ScanService: scan, QueryService: query, Logger: logger}
}

// Scan — эхо-обработчик сканирования URL.
func (h *IntelHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req service.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Scan: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.ScanService.Process(req))
}

// QueryRequest — тело запроса /api/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// Query — заглушка AI-ответчика.
func (h *IntelHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Query: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "empty query", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": h.QueryService.Answer(req.Query)})
}
