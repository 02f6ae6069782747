package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyHeader заголовок со статическим ключом доступа.
const APIKeyHeader = "x-api-key"

// WithAPIKey пропускает запрос дальше только при совпадении x-api-key с secret.
// Нет заголовка — 401, неверный ключ — 403.
func WithAPIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				denied(w, http.StatusUnauthorized, "Missing header: "+APIKeyHeader)
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				if logger != nil {
					logger.Warnw("rejected api key", "uri", r.RequestURI, "remote", r.RemoteAddr)
				}
				denied(w, http.StatusForbidden, "Invalid API Key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func denied(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
