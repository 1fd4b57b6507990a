package domain

// Role is the closed set of account roles the backend issues. The portal
// only ever operates on behalf of CLIENTE accounts; ADMIN is recognised
// solely so the route guard can bounce admins to their own application.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENTE"
)

// Valid reports whether r is one of the known role tags. Anything else is
// treated as a corrupt or forged identity.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Identity is the public, non-sensitive part of a session: who the user is
// according to the backend. It is what gets persisted in the `user` cookie.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  Role   `json:"rol"`
}

// Session couples an Identity with the opaque bearer credential proving it
// to the backend. The token never appears in the identity cookie.
type Session struct {
	Identity
	Token string `json:"-"`
}

// IsClient reports whether the session belongs to a CLIENTE account.
func (s *Session) IsClient() bool {
	return s != nil && s.Role == RoleClient
}

// ClientUser is the full server-owned user record including the coin
// balance. Fetched per view, never mutated locally.
type ClientUser struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  Role   `json:"rol"`
	Coins int    `json:"monedas"`
}

// AuthResult is what the backend returns from login, legacy register and
// code verification: an identity plus the bearer token and a human message.
type AuthResult struct {
	Identity
	Token   string `json:"token"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Coins   int    `json:"monedas,omitempty"`
}

// Session builds the session this result authorises.
func (a *AuthResult) Session() *Session {
	return &Session{Identity: a.Identity, Token: a.Token}
}
