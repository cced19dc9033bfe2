package auth

// Authenticatable is what the auth core needs to know about an account.
type Authenticatable interface {
	Subject() string
	HashedPassword() string
	Authorities() []string
	IsEnabled() bool
}

// Principal is the identity attached to a request. The zero value is the
// anonymous principal.
type Principal struct {
	subject       string
	role          string
	enabled       bool
	authenticated bool
}

// Anonymous returns the principal of a request that carried no token
func Anonymous() Principal {
	return Principal{}
}

// NewPrincipal builds an authenticated principal from account details.
// The first authority is taken as the role.
func NewPrincipal(account Authenticatable) Principal {
	var role string
	if authorities := account.Authorities(); len(authorities) > 0 {
		role = authorities[0]
	}
	return Principal{
		subject:       account.Subject(),
		role:          role,
		enabled:       account.IsEnabled(),
		authenticated: true,
	}
}

func (p Principal) Subject() string { return p.subject }

func (p Principal) Role() string { return p.role }

func (p Principal) Enabled() bool { return p.enabled }

func (p Principal) IsAuthenticated() bool { return p.authenticated }

// HasAnyRole reports whether the principal is authenticated and holds one of roles
func (p Principal) HasAnyRole(roles ...string) bool {
	if !p.authenticated {
		return false
	}
	for _, r := range roles {
		if p.role == r {
			return true
		}
	}
	return false
}
