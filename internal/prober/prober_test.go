package prober_test

import (
	"context"
	"creditor/internal/prober"
	"creditor/pkg/domain"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractCode(t *testing.T) {
	p := prober.New("cursor.com", true, nil)

	tests := []struct {
		name string
		url  string
		code string
		ok   bool
	}{
		{name: "https", url: "https://cursor.com/referral?code=ABC123", code: "ABC123", ok: true},
		{name: "http", url: "http://cursor.com/referral?code=XYZ", code: "XYZ", ok: true},
		{name: "case insensitive scheme and host", url: "HTTPS://CURSOR.COM/referral?code=abc123", code: "abc123", ok: true},
		{name: "embedded in text", url: "see https://cursor.com/referral?code=AB12 for details", code: "AB12", ok: true},
		{name: "no code", url: "https://cursor.com/referral", ok: false},
		{name: "wrong host", url: "https://example.com/referral?code=ABC123", ok: false},
		{name: "not a url", url: "hello world", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := p.ExtractCode(tt.url)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.code, code)
			}
		})
	}
}

func TestCheck_NonMatchingURLDoesNotNavigate(t *testing.T) {
	// nil session manager: a navigation attempt would try launching a
	// browser and hang well past this test's deadline, so a fast unknown
	// also proves no navigation happened
	p := prober.New("cursor.com", true, nil)

	start := time.Now()
	res := p.Check(context.Background(), "https://example.com/nothing")
	require.Less(t, time.Since(start), time.Second)

	require.Equal(t, domain.ProbeUnknown, res.Status)
	require.Contains(t, res.Err, "could not extract referral code")
	require.False(t, res.CheckedAt.IsZero())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   domain.ProbeStatus
		amount int
	}{
		{
			name:   "non-200 status",
			status: http.StatusInternalServerError,
			want:   domain.ProbeUnknown,
		},
		{
			name:   "valid and eligible with amount",
			status: http.StatusOK,
			body:   `{"isValid": true, "userIsEligible": true, "metadata": {"amount": 50}}`,
			want:   domain.ProbeAvailable,
			amount: 50,
		},
		{
			name:   "valid and eligible without amount",
			status: http.StatusOK,
			body:   `{"isValid": true, "userIsEligible": true}`,
			want:   domain.ProbeAvailable,
			amount: domain.DefaultCreditAmount,
		},
		{
			name:   "valid but not eligible",
			status: http.StatusOK,
			body:   `{"isValid": true, "userIsEligible": false}`,
			want:   domain.ProbeRedeemed,
		},
		{
			name:   "invalid code",
			status: http.StatusOK,
			body:   `{"isValid": false}`,
			want:   domain.ProbeRedeemed,
		},
		{
			name:   "empty object",
			status: http.StatusOK,
			body:   `{}`,
			want:   domain.ProbeRedeemed,
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"isValid":`,
			want:   domain.ProbeUnknown,
		},
		{
			name:   "null body",
			status: http.StatusOK,
			body:   `null`,
			want:   domain.ProbeUnknown,
		},
		{
			name:   "array body",
			status: http.StatusOK,
			body:   `[1, 2, 3]`,
			want:   domain.ProbeUnknown,
		},
		{
			name:   "unrecognized object",
			status: http.StatusOK,
			body:   `{"something": "else"}`,
			want:   domain.ProbeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := prober.Classify(tt.status, []byte(tt.body))
			require.Equal(t, tt.want, res.Status)
			if tt.want == domain.ProbeAvailable {
				require.Equal(t, tt.amount, res.Amount)
			}
			if tt.want == domain.ProbeUnknown {
				require.NotEmpty(t, res.Err, "unknown results should carry a reason")
			}
		})
	}
}
