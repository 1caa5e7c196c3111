package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет административный токен в заголовке X-Admin-Token.
// Используется на всех маршрутах управления записями и услугами.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)

			if got == "" {
				handlers.RespondUnauthorized(w, "отсутствует заголовок X-Admin-Token")
				return
			}

			if got != token {
				handlers.RespondForbidden(w, "некорректный административный токен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
