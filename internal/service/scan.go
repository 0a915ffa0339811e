package service

import (
	"fmt"
	"strconv"
	"time"
)

// ScanRequest — тело запроса POST /api/scan.
type ScanRequest struct {
	URL         string `json:"url"`
	Status      string `json:"status"`
	ThreatLevel string `json:"threatLevel"`
}

// ScanResponse — эхо-ответ с подстановкой значений по умолчанию.
type ScanResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Status      string `json:"status"`
	ThreatLevel string `json:"threatLevel"`
}

// ScanService — серверная часть "сканера": ничего не сканирует,
// отражает запрос, подставляя дефолты для пустых полей.
type ScanService struct{}

// NewScanService конструктор.
func NewScanService() *ScanService {
	return &ScanService{}
}

// Process возвращает эхо запроса. Каждое поле дефолтится независимо —
// статус и threatLevel сервер НЕ сверяет между собой.
func (s *ScanService) Process(req ScanRequest) ScanResponse {
	resp := ScanResponse{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		URL:         req.URL,
		Status:      req.Status,
		ThreatLevel: req.ThreatLevel,
	}
	if resp.Status == "" {
		resp.Status = "safe"
	}
	if resp.ThreatLevel == "" {
		resp.ThreatLevel = "Safe"
	}
	return resp
}

// QueryService — заглушка AI-ответчика на сервере.
type QueryService struct{}

// NewQueryService конструктор.
func NewQueryService() *QueryService {
	return &QueryService{}
}

// Answer возвращает фиктивный ответ на вопрос.
func (s *QueryService) Answer(query string) string {
	return fmt.Sprintf("Stub: you asked '%s'", query)
}
