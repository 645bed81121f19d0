// Package user resolves who is sitting at the dashboard.
package user

import (
	"os"
	"os/user"
	"strings"
)

// DisplayName returns the name used to greet the counselor on the dashboard.
// It prefers the account's full name (first word only), then the login name,
// then $USER. It returns "" when none are known.
func DisplayName() string {
	return displayName(user.Current, os.Getenv("USER"))
}

func displayName(current func() (*user.User, error), envUser string) string {
	if u, err := current(); err == nil {
		if first, _, _ := strings.Cut(strings.TrimSpace(u.Name), " "); first != "" {
			// Some systems store "Name,,," GECOS fields
			if name, _, _ := strings.Cut(first, ","); name != "" {
				return name
			}
		}
		if u.Username != "" {
			return u.Username
		}
	}
	return envUser
}

// Greeting returns "Welcome back, <name>!" or "Welcome back!" when the name is unknown.
func Greeting() string {
	return greeting(DisplayName())
}

func greeting(name string) string {
	if name == "" {
		return "Welcome back!"
	}
	return "Welcome back, " + name + "!"
}
