package auth

import "strings"

// AllowList is the static set of emails permitted to authenticate. The
// back-office has no registration, so authorization is membership in this
// process-configured set. Lookup only — never mutated after construction.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails []string) *AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if n := NormalizeEmail(e); n != "" {
			set[n] = struct{}{}
		}
	}
	return &AllowList{emails: set}
}

// IsAllowed reports whether email may authenticate. No side effects, no I/O.
func (a *AllowList) IsAllowed(email string) bool {
	_, ok := a.emails[NormalizeEmail(email)]
	return ok
}

// NormalizeEmail lower-cases and trims an address so that the same mailbox
// always maps to the same PIN record.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
