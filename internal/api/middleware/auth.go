package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-GroomingAgenda/internal/actorctx"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

const (
	msgMissingAuthorization = "Autenticação necessária."
	msgInvalidToken         = "Sessão inválida ou expirada."
)

var errInvalidClaims = errors.New("invalid token claims")

// Auth проверяет Bearer JWT (HMAC) и кладет пользователя в контекст.
// Claim sub это id пользователя, role его роль. Токен передается дальше в backend как есть.
func Auth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingAuthorization)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			raw := strings.TrimSpace(parts[1])

			actor, err := ParseToken(raw, key)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(actorctx.WithActor(r.Context(), actor)))
		})
	}
}

// ParseToken validates the token and reads the actor from its claims
func ParseToken(raw string, key []byte) (domain.Actor, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return domain.Actor{}, err
	}
	if !token.Valid {
		return domain.Actor{}, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Actor{}, errInvalidClaims
	}

	var userID string
	switch sub := claims["sub"].(type) {
	case string:
		userID = strings.TrimSpace(sub)
	case float64:
		userID = fmt.Sprintf("%.0f", sub)
	}
	if userID == "" {
		return domain.Actor{}, errInvalidClaims
	}
	role, _ := claims["role"].(string)

	return domain.Actor{UserID: userID, Role: role, Token: raw}, nil
}

// GetActor возвращает пользователя, положенного в контекст Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := actorctx.FromContext(ctx)
	if !ok || actor.UserID == "" {
		return domain.Actor{}, false
	}
	return actor, true
}
