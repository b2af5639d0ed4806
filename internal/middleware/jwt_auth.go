package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

// CtxCaller is the token subject of the authenticated caller.
const CtxCaller ctxKey = "caller"

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": message})
}

// JWTAuth guards the upload endpoint with a shared-secret HS256 bearer token.
// Wired only when API_JWT_SECRET is set; deployments behind a trusted gateway
// run without it.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing Authorization header")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "invalid Authorization header")
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
			if err != nil || token == nil || !token.Valid {
				unauthorized(w, "invalid token")
				return
			}

			caller := ""
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				caller, _ = claims["sub"].(string)
			}

			ctx := context.WithValue(r.Context(), CtxCaller, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
