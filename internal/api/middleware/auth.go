package middleware

import (
	"context"
	"net/http"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth проверяет наличие заголовка X-User-ID и кладет его в контекст
// Telegram mini-app передает идентификатор пользователя этим заголовком
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает Telegram ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
