package services

import (
	"strings"

	"space-booking-service/internal/domain"
)

// LoginResult carries the per-field verdicts shown next to the inputs and
// the overall decision that enables the login action.
type LoginResult struct {
	EmailFeedback    string
	PasswordFeedback string
	OK               bool
}

// CheckLogin compares the typed credentials against the static user
// record. Empty inputs produce no feedback; otherwise each field reports
// "Correct" or "Incorrect" independently.
func CheckLogin(email, password string, user *domain.User) LoginResult {
	if user == nil {
		return LoginResult{}
	}

	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	emailOK := email != "" && email == user.Email
	passwordOK := password != "" && password == user.Password

	res := LoginResult{OK: emailOK && passwordOK}
	if email != "" {
		res.EmailFeedback = feedbackFor(emailOK)
	}
	if password != "" {
		res.PasswordFeedback = feedbackFor(passwordOK)
	}
	return res
}

func feedbackFor(correct bool) string {
	if correct {
		return "Correct"
	}
	return "Incorrect"
}
