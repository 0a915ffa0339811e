package service

import (
	"encoding/json"
	"strconv"
	"time"

	"DarkScope/internal/cli/model"
	"DarkScope/internal/cli/repo"
)

// SessionService — стор текущей сессии. Вход здесь мок-проверка:
// реальная аутентификация живёт на сервере (signin/signup), а эта
// проверка лишь открывает локальный дашборд.
type SessionService struct {
	kv   repo.KVStore
	user *model.User
	now  func() time.Time
}

// NewSessionService создаёт стор сессии и восстанавливает пользователя
// из хранилища. Битый JSON под ключом user трактуется как "нет сохранённого
// пользователя", а не как ошибка.
func NewSessionService(kv repo.KVStore) *SessionService {
	s := &SessionService{kv: kv, now: time.Now}
	if raw, ok, err := kv.Get(repo.KeyUser); err == nil && ok {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err == nil && u.Username != "" {
			s.user = &u
		}
	}
	return s
}

// Login — мок-вход: успех при непустых identifier и secret.
// При remember пользователь сохраняется в хранилище, иначе живёт только в памяти.
func (s *SessionService) Login(identifier, secret string, remember bool) bool {
	if identifier == "" || secret == "" {
		return false
	}
	u := &model.User{
		ID:       strconv.FormatInt(s.now().UnixMilli(), 10),
		Username: identifier,
	}
	if remember {
		if b, err := json.Marshal(u); err == nil {
			_ = s.kv.Set(repo.KeyUser, string(b))
		}
	}
	s.user = u
	return true
}

// Logout очищает пользователя и стирает все четыре ключа профиля.
// Каждое удаление независимое и best-effort.
func (s *SessionService) Logout() {
	s.user = nil
	_ = s.kv.Delete(repo.KeyUser)
	_ = s.kv.Delete(repo.KeyScans)
	_ = s.kv.Delete(repo.KeyQueries)
	_ = s.kv.Delete(repo.KeySettings)
	_ = s.kv.Delete(repo.KeyAuthToken)
}

// IsAuthenticated — есть ли текущий пользователь.
func (s *SessionService) IsAuthenticated() bool {
	return s.user != nil
}

// CurrentUser возвращает текущего пользователя.
func (s *SessionService) CurrentUser() (*model.User, bool) {
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}
