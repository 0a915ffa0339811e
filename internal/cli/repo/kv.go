package repo

// Фиксированные ключи клиентского хранилища.
// Значения под ключами — непрозрачные JSON-блобы; отсутствие ключа — штатное состояние.
const (
	KeyUser     = "user"
	KeyScans    = "scans"
	KeyQueries  = "queries"
	KeySettings = "settings"

	// KeyAuthToken — cookie сервера для signin/signup; не входит в "четвёрку"
	// ключей дашборда, но также стирается при logout.
	KeyAuthToken = "auth_token"
)

// KVStore описывает порт долговременного key/value-хранилища клиента.
type KVStore interface {
	// Get возвращает значение и признак наличия ключа.
	Get(key string) (string, bool, error)

	// Set записывает значение, перезаписывая существующее.
	Set(key, value string) error

	// Delete удаляет ключ; удаление отсутствующего ключа — не ошибка.
	Delete(key string) error
}
