package realtime

// Registration ties a user identity to its current live connection.
type Registration struct {
	UserID   int64
	Username string
	Client   *Client
}

// Registry maps user identities to live connections. It is owned by the
// hub goroutine and must only be touched from there.
type Registry struct {
	byUser map[int64]*Registration
}

func NewRegistry() *Registry {
	return &Registry{byUser: map[int64]*Registration{}}
}

// Register inserts or replaces the entry for userID. The last
// registered connection wins.
func (r *Registry) Register(userID int64, username string, c *Client) {
	r.byUser[userID] = &Registration{UserID: userID, Username: username, Client: c}
}

// LookupUser returns the registration for userID. Absence is a normal
// outcome: the user is offline.
func (r *Registry) LookupUser(userID int64) (*Registration, bool) {
	reg, ok := r.byUser[userID]
	return reg, ok
}

// LookupUsername finds a registration by display name.
func (r *Registry) LookupUsername(username string) (*Registration, bool) {
	for _, reg := range r.byUser {
		if reg.Username == username {
			return reg, true
		}
	}
	return nil, false
}

// RemoveClient drops the entry whose connection is c, if any. A stale
// disconnect from a connection that was already replaced leaves the
// newer registration intact.
func (r *Registry) RemoveClient(c *Client) {
	for id, reg := range r.byUser {
		if reg.Client == c {
			delete(r.byUser, id)
			return
		}
	}
}

// Each calls fn for every registered connection.
func (r *Registry) Each(fn func(*Registration)) {
	for _, reg := range r.byUser {
		fn(reg)
	}
}

func (r *Registry) Len() int {
	return len(r.byUser)
}
