package utils

import (
	"strings"
	"time"

	"clubhub-backend/internal/domain"
)

// DeriveCredentials maps a display name to a deterministic username/password
// pair: "Sahitya Singh" -> sahitya / sahitya123. The username is the first
// whitespace-delimited token, lowercased and stripped to [a-z0-9]. Explicit
// overrides win; only missing fields are derived. No uniqueness check against
// existing usernames — two members named Sam get the same pair, and the admin
// resolves it through the credentials-update endpoint.
func DeriveCredentials(name, username, password string) domain.Credentials {
	base := usernameFromName(name)
	if username == "" {
		username = base
	}
	if password == "" {
		password = base + "123"
	}
	return domain.Credentials{Username: username, Password: password}
}

func usernameFromName(name string) string {
	first := name
	if fields := strings.Fields(name); len(fields) > 0 {
		first = fields[0]
	}
	first = strings.ToLower(first)

	var b strings.Builder
	for _, r := range first {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Today returns the caller's local calendar date as an ISO yyyy-mm-dd string,
// the lower bound for "upcoming" range queries.
func Today() string {
	return time.Now().Format("2006-01-02")
}
