package constant

type contextKey string

// UserIDKey carries the authenticated account ID through request contexts.
const UserIDKey contextKey = "user_id"

// SessionIDKey carries the JWT jti of the active session.
const SessionIDKey contextKey = "session_id"
