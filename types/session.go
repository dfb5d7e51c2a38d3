package types

// SessionState tracks where a session is in its lifecycle. The rest of the
// system only reads Email and the authenticated/unauthenticated state.
type SessionState string

const (
	SessionLoading         SessionState = "loading"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

const (
	SessionEventSignedIn  = "signed_in"
	SessionEventSignedOut = "signed_out"
	SessionEventSignedUp  = "signed_up"
)

// SessionEvent is broadcast to every subscriber whenever the auth state
// changes. Duplicate events are possible; consumers must treat a repeat as a
// no-op.
type SessionEvent struct {
	Type  string       `json:"type"`
	Email string       `json:"email"`
	State SessionState `json:"state"`
	At    int64        `json:"at"`
}
