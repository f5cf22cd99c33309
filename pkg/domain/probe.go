package domain

import "time"

// ProbeStatus classifies the outcome of one referral status probe.
// The three values are mutually exclusive; unknown is the fallback for every
// ambiguous or failed check.
type ProbeStatus string

const (
	// ProbeAvailable indicates the external service confirmed the code as
	// valid and the viewer as eligible.
	ProbeAvailable ProbeStatus = "available"
	// ProbeRedeemed indicates the external service reports the code as no
	// longer redeemable.
	ProbeRedeemed ProbeStatus = "redeemed"
	// ProbeUnknown indicates the check could not be classified with
	// confidence (timeout, navigation failure, malformed response).
	ProbeUnknown ProbeStatus = "unknown"
)

// ProbeResult is the point-in-time outcome of probing one referral URL.
// It is a sample of the external service's view, not a guarantee that stays
// valid until use.
type ProbeResult struct {
	// Status is the classification of the probe.
	Status ProbeStatus `json:"status"`
	// Amount is the credit value reported by the service. Only meaningful
	// when Status is ProbeAvailable.
	Amount int `json:"amount,omitempty"`
	// CheckedAt is when the probe ran.
	CheckedAt time.Time `json:"checkedAt"`
	// Err carries an optional human-readable reason for an unknown result.
	// Probe failures degrade to unknown instead of propagating, so this is
	// informational only.
	Err string `json:"error,omitempty"`
}
