package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/session"
)

// SessionProvider returns the agenda session of an actor, creating it on first use
type SessionProvider interface {
	Acquire(ctx context.Context, actor domain.Actor) *session.Session
}

type sessionKey struct{}

// Session attaches the caller's agenda session. Must run after Auth.
func Session(provider SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingAuthorization)
				return
			}
			sess := provider.Acquire(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
		})
	}
}

// GetSession возвращает сессию текущего пользователя
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok && sess != nil
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}
