package domain

import (
	"fmt"
	"regexp"
	"time"
)

// ReferralLink is a referral URL together with its extracted code and the
// time it was last checked. Only CheckedAt changes after construction.
type ReferralLink struct {
	// URL is the full referral URL as found in the source text.
	URL string `json:"url"`
	// Code is the referral code extracted from URL.
	Code string `json:"code"`
	// CheckedAt is when the link was last probed; zero value means never.
	CheckedAt time.Time `json:"checkedAt,omitempty"`
}

// ReferralPattern builds the matcher for referral URLs on the given service
// host: https?://<host>/referral?code=<code> with an alphanumeric code.
// Scheme, host and code all match case-insensitively. The code is captured
// in the first submatch group.
func ReferralPattern(host string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)https?://%s/referral\?code=([A-Z0-9]+)`, regexp.QuoteMeta(host)))
}
