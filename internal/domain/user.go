package domain

// User is the static account record the login check compares against.
type User struct {
	Username string
	Email    string
	Password string
}
