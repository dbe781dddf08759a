package middleware

import (
	"context"

	"fsadmin/internal/requestctx"
)

type userKey string

const userContextKey userKey = "user"

// UserContext is the authenticated identity carried through a request.
type UserContext struct {
	UserID string
	Name   string
	Role   string
}

func WithUser(ctx context.Context, user UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(UserContext)
	return user, ok
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
