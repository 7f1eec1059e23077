package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя.
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку
const HeaderUserID = "X-User-ID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type userIDKey struct{}

// Auth middleware извлекает идентификатор пользователя из заголовка
// и кладет его в контекст запроса. Запросы без заголовка отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}
