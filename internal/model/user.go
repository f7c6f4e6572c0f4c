package model

// User is the account record returned by the backend on signup and
// login.  The backend is authoritative; the web client only keeps a
// copy of it in the session cookie.
//
// Fields:
//  ID    – backend identifier (user_id).
//  Name  – display name shown in the navigation bar.
//  Email – login email address.
type User struct {
	ID    uint64 `json:"user_id"` // app_user.user_id
	Name  string `json:"name"`    // app_user.name
	Email string `json:"email"`   // app_user.email
}

// Valid reports whether the record identifies a user.  A record without
// an id is treated as no session at all.
func (u User) Valid() bool { return u.ID != 0 }
