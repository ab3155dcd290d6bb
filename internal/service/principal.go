package service

// Principal is the authenticated identity resolved once per request by
// the auth middleware and threaded explicitly into every core call.
type Principal struct {
	UserID   uint
	Username string
}
