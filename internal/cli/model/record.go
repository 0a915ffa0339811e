package model

import (
	"strconv"
	"strings"
	"time"

	"DarkScope/internal/model"
)

// ScanRecord — сохранённый результат проверки URL.
// status и threatLevel хранятся отдельными полями ради совместимости формата:
// локальный путь всегда пишет согласованную пару (через model.ThreatLevel),
// удалённый путь может принести рассогласованные значения от сервера.
type ScanRecord struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Status      string `json:"status"`      // "safe" | "medium" | "high"
	ThreatLevel string `json:"threatLevel"` // "Safe" | "Medium" | "High"
	Notes       string `json:"notes"`
	Timestamp   string `json:"timestamp"`
	IsOnion     bool   `json:"isOnion,omitempty"`
}

// NewScanRecord создаёт запись с согласованной парой status/threatLevel.
func NewScanRecord(url string, level model.ThreatLevel, now time.Time) ScanRecord {
	return ScanRecord{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		URL:         url,
		Status:      level.Status(),
		ThreatLevel: level.Display(),
		Notes:       level.Notes(),
		Timestamp:   FormatTimestamp(now),
		IsOnion:     IsOnionURL(url),
	}
}

// QueryRecord — сохранённый вопрос к AI-ответчику вместе с ответом.
type QueryRecord struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

// NewQueryRecord создаёт запись вопрос/ответ.
func NewQueryRecord(query, answer string, now time.Time) QueryRecord {
	return QueryRecord{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Query:     query,
		Answer:    answer,
		Timestamp: FormatTimestamp(now),
	}
}

// DashboardStats — производный агрегат по коллекции сканов.
// Никогда не сохраняется отдельно от записей, из которых посчитан.
type DashboardStats struct {
	TotalScans   int `json:"totalScans"`
	HighThreat   int `json:"highThreat"`
	MediumThreat int `json:"mediumThreat"`
	SafeThreat   int `json:"safeThreat"`
}

// ComputeStats — чистая функция пересчёта статистики по всем сканам.
func ComputeStats(scans []ScanRecord) DashboardStats {
	st := DashboardStats{TotalScans: len(scans)}
	for _, s := range scans {
		switch s.Status {
		case "high":
			st.HighThreat++
		case "medium":
			st.MediumThreat++
		case "safe":
			st.SafeThreat++
		}
	}
	return st
}

// IsOnionURL — признак .onion-адреса (подстрочная проверка, как в веб-версии).
func IsOnionURL(url string) bool {
	return strings.Contains(url, ".onion")
}

// FormatTimestamp — единый формат отметки времени для записей.
func FormatTimestamp(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
