package model

// User is a registered account row.
//
// Password holds the stored credential: a salted bcrypt hash for accounts
// created through Store.Register, or the raw string for accounts created
// through the unsafe maintenance path. The two are never interchangeable.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
