package service

import (
	"encoding/json"
	"strings"

	"DarkScope/internal/cli/model"
	"DarkScope/internal/cli/repo"
)

// ScanHistory — история сканов поверх ключа scans.
// Коллекция хранится в порядке добавления (старые в начале);
// наружу записи отдаются в обратном порядке (свежие первыми).
type ScanHistory struct {
	kv repo.KVStore
}

// NewScanHistory создаёт историю сканов.
func NewScanHistory(kv repo.KVStore) *ScanHistory {
	return &ScanHistory{kv: kv}
}

// Add дописывает запись в конец коллекции и сохраняет её целиком.
// Дедупликации и проверки коллизий ID нет.
func (h *ScanHistory) Add(rec model.ScanRecord) error {
	all := h.load()
	all = append(all, rec)
	return saveJSON(h.kv, repo.KeyScans, all)
}

// All возвращает всю коллекцию, свежие записи первыми.
func (h *ScanHistory) All() []model.ScanRecord {
	return reversed(h.load())
}

// ListRecent возвращает последние n добавленных записей, свежие первыми.
func (h *ScanHistory) ListRecent(n int) []model.ScanRecord {
	all := h.load()
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return reversed(all)
}

// Search — регистронезависимый подстрочный фильтр по URL и notes.
// Пустой запрос возвращает всю коллекцию.
func (h *ScanHistory) Search(term string) []model.ScanRecord {
	all := h.All()
	if term == "" {
		return all
	}
	t := strings.ToLower(term)
	res := make([]model.ScanRecord, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.URL), t) || strings.Contains(strings.ToLower(r.Notes), t) {
			res = append(res, r)
		}
	}
	return res
}

// Clear заменяет коллекцию пустой; другие ключи не трогает.
func (h *ScanHistory) Clear() error {
	return saveJSON(h.kv, repo.KeyScans, []model.ScanRecord{})
}

// Stats пересчитывает статистику по всей коллекции.
func (h *ScanHistory) Stats() model.DashboardStats {
	return model.ComputeStats(h.load())
}

// load читает коллекцию из хранилища; битый JSON — пустая коллекция.
func (h *ScanHistory) load() []model.ScanRecord {
	raw, ok, err := h.kv.Get(repo.KeyScans)
	if err != nil || !ok {
		return nil
	}
	var all []model.ScanRecord
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil
	}
	return all
}

// QueryHistory — история AI-вопросов поверх ключа queries.
// Симметрична ScanHistory.
type QueryHistory struct {
	kv repo.KVStore
}

// NewQueryHistory создаёт историю вопросов.
func NewQueryHistory(kv repo.KVStore) *QueryHistory {
	return &QueryHistory{kv: kv}
}

// Add дописывает запись в конец коллекции и сохраняет её целиком.
func (h *QueryHistory) Add(rec model.QueryRecord) error {
	all := h.load()
	all = append(all, rec)
	return saveJSON(h.kv, repo.KeyQueries, all)
}

// All возвращает всю коллекцию, свежие записи первыми.
func (h *QueryHistory) All() []model.QueryRecord {
	return reversed(h.load())
}

// ListRecent возвращает последние n добавленных записей, свежие первыми.
func (h *QueryHistory) ListRecent(n int) []model.QueryRecord {
	all := h.load()
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return reversed(all)
}

// Search — регистронезависимый подстрочный фильтр по query и answer.
func (h *QueryHistory) Search(term string) []model.QueryRecord {
	all := h.All()
	if term == "" {
		return all
	}
	t := strings.ToLower(term)
	res := make([]model.QueryRecord, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.Query), t) || strings.Contains(strings.ToLower(r.Answer), t) {
			res = append(res, r)
		}
	}
	return res
}

// Clear заменяет коллекцию пустой.
func (h *QueryHistory) Clear() error {
	return saveJSON(h.kv, repo.KeyQueries, []model.QueryRecord{})
}

func (h *QueryHistory) load() []model.QueryRecord {
	raw, ok, err := h.kv.Get(repo.KeyQueries)
	if err != nil || !ok {
		return nil
	}
	var all []model.QueryRecord
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil
	}
	return all
}

func saveJSON(kv repo.KVStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, string(b))
}

// reversed возвращает копию среза в обратном порядке, не трогая исходный.
func reversed[T any](in []T) []T {
	out := make([]T, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		out = append(out, in[i])
	}
	return out
}
