package context

import (
	"context"

	"github.com/celebratehq/birthday-api/constant"
)

// GetUserID extracts the authenticated account ID placed into the
// context by the auth middleware.
func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// GetSessionID extracts the session ID (jti) of the current request.
func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SessionIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// WithSession returns a context carrying the authenticated account ID
// and session ID.
func WithSession(ctx context.Context, accountID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, accountID)
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}
