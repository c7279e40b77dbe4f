package models

// Session is the authenticated user as reported by the external auth service.
// A nil *Session means nobody is signed in.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type ViewState string

const (
	ViewUnauthenticated ViewState = "unauthenticated"
	ViewAuthenticated   ViewState = "authenticated"
)

// ViewStateFor reports which dashboard branch a session selects. Only presence
// matters; an empty username is still authenticated.
func ViewStateFor(s *Session) ViewState {
	if s == nil {
		return ViewUnauthenticated
	}
	return ViewAuthenticated
}
