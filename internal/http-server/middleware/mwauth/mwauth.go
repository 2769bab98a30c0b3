package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/services/auth"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenParser
type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

// New rejects requests without a valid bearer token (401) and tokens that
// do not carry one of roles (403). The claims are stored in the request
// context.
func New(log *slog.Logger, parser TokenParser, roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Info("missing bearer token", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Token de autenticação ausente"))
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				log.Info("invalid token", slog.String("path", r.URL.Path), sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Token inválido ou expirado"))
				return
			}

			if !hasRole(claims.Role, roles) {
				log.Warn("insufficient role",
					slog.String("path", r.URL.Path),
					slog.String("subject", claims.Subject),
					slog.String("role", claims.Role),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("Acesso negado"))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		}

		return http.HandlerFunc(fn)
	}
}

// ClaimsFromContext returns the claims stored by New.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*auth.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func hasRole(role string, roles []string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}
