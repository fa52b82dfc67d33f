package mw

import (
	"net/http"
	"strings"

	"github.com/EgorLis/micro-posts/internal/domain"
)

// RequireAuth извлекает bearer-токен и резолвит пользователя через
// domain.UserResolver. Без валидного токена дальше не пускаем; причина
// отказа (битый токен / просрочка / нет пользователя) наружу не видна.
func RequireAuth(resolver domain.UserResolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			http.Error(w, `{"error":{"code":1001,"text":"unauthorized"}}`, http.StatusUnauthorized)
			return
		}
		u, err := resolver.Resolve(r.Context(), raw)
		if err != nil {
			http.Error(w, `{"error":{"code":1001,"text":"unauthorized"}}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), u)))
	})
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
