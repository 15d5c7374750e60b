package auth

import "strings"

// Allowlist is the set of admin email addresses permitted to sign in with
// elevated capabilities. Matching is case-insensitive.
type Allowlist map[string]struct{}

// ParseAllowlist builds an Allowlist from a comma-separated configuration
// value. Entries are lowercased and trimmed; empty entries are dropped.
func ParseAllowlist(raw string) Allowlist {
	list := Allowlist{}
	for _, entry := range strings.Split(strings.ToLower(raw), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		list[entry] = struct{}{}
	}
	return list
}

// Allows reports whether the email may sign in as an admin.
func (a Allowlist) Allows(email string) bool {
	_, ok := a[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
