// Package actorctx carries the authenticated staff user through a context.
package actorctx

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type ctxKey struct{}

// WithActor stores the actor in ctx
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// FromContext returns the actor stored by WithActor
func FromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(domain.Actor)
	return actor, ok
}

// Token returns the bearer token of the actor in ctx, or ""
func Token(ctx context.Context) string {
	actor, _ := FromContext(ctx)
	return actor.Token
}
