package validate

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// commonDomains are the mail providers SuggestEmail corrects towards.
var commonDomains = []string{
	"gmail.com",
	"googlemail.com",
	"outlook.com",
	"hotmail.com",
	"live.com",
	"yahoo.com",
	"icloud.com",
	"me.com",
	"proton.me",
	"protonmail.com",
	"aol.com",
	"fastmail.com",
}

// maxSuggestDistance is the largest edit distance still treated as a typo.
const maxSuggestDistance = 2

// SuggestEmail returns a corrected address when the domain of email is a
// near miss of a common provider, e.g. "ada@gmial.com" -> "ada@gmail.com".
// It returns "" when the address is malformed, already uses a known domain,
// or nothing is close enough. The suggestion is advisory and never an error.
func SuggestEmail(email string) string {
	if ValidateEmail(email) != nil {
		return ""
	}
	at := strings.LastIndex(email, "@")
	local, domain := email[:at], strings.ToLower(email[at+1:])

	best, bestDist := "", maxSuggestDistance+1
	for _, d := range commonDomains {
		if d == domain {
			return ""
		}
		if dist := levenshtein.ComputeDistance(domain, d); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best == "" {
		return ""
	}
	return local + "@" + best
}
