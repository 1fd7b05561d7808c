package httpx

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated user's id once the session
	// middleware has resolved the cookie.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeySession carries the full resolved session record.
	CtxKeySession ctxKey = "session"
)
