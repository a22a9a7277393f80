package model

// Scope attributes a request to a caller for auditing. It is not an authorization boundary.
type Scope struct {
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
}

const AnonymousUserID = "anonymous"

// IsAnonymous reports whether the request carried no caller identity.
func (s Scope) IsAnonymous() bool {
	return s.UserID == "" || s.UserID == AnonymousUserID
}
