package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cookieName — имя cookie с auth-токеном.
const cookieName = "auth_token"

// tokenTTL — время жизни auth-токена.
const tokenTTL = 24 * time.Hour

type contextKey string

const userIDKey contextKey = "user_id"

// claims — полезная нагрузка JWT.
type claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// SetLoginCookie подписывает JWT с userID и кладёт его в cookie ответа.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// WithAuth проверяет auth cookie и, если токен валиден, кладёт user_id в контекст.
// Отсутствие или невалидность cookie НЕ является ошибкой: запрос идёт дальше анонимным.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			cl := &claims{}
			token, err := jwt.ParseWithClaims(c.Value, cl, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, cl.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает user_id, установленный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
