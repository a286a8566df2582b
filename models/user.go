package models

// User carries the password verbatim so a reloaded users file keeps working
// credentials. Plain-text storage needs a salted-hash upgrade before this
// layer faces untrusted storage; API responses must never echo the field.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
