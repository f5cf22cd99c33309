package prober_test

import (
	"context"
	"creditor/internal/prober"
	"creditor/pkg/domain"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubChecker returns canned results and records the probed URLs.
type stubChecker struct {
	urls    []string
	results map[string]domain.ProbeResult
	onCheck func()
}

func (s *stubChecker) Check(_ context.Context, url string) domain.ProbeResult {
	s.urls = append(s.urls, url)
	if s.onCheck != nil {
		s.onCheck()
	}

	return s.results[url]
}

// stubSessions records the session lifecycle around a batch.
type stubSessions struct {
	initCalls  int
	closeCalls int
	initErr    error
}

func (s *stubSessions) Init(context.Context) error {
	s.initCalls++

	return s.initErr
}

func (s *stubSessions) Close() { s.closeCalls++ }

func TestBatchScanner_Scan(t *testing.T) {
	urls := []string{
		"https://cursor.com/referral?code=AAA",
		"https://cursor.com/referral?code=BBB",
	}
	checker := &stubChecker{results: map[string]domain.ProbeResult{
		urls[0]: {Status: domain.ProbeAvailable, Amount: 20},
		urls[1]: {Status: domain.ProbeRedeemed},
	}}
	sessions := &stubSessions{}

	var indexes []int
	var totals []int
	start := time.Now()
	results, err := prober.NewBatchScanner(checker, sessions).Scan(context.Background(), urls,
		func(index, total int, _ domain.ProbeResult) {
			indexes = append(indexes, index)
			totals = append(totals, total)
		})
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Equal(t, urls, checker.urls, "urls must be probed sequentially in order")
	require.Equal(t, []int{1, 2}, indexes)
	require.Equal(t, []int{2, 2}, totals)
	require.Len(t, results, 2)
	require.Equal(t, domain.ProbeAvailable, results[urls[0]].Status)
	require.Equal(t, domain.ProbeRedeemed, results[urls[1]].Status)

	require.Equal(t, 1, sessions.initCalls, "session must be initialized before the loop")
	require.Equal(t, 1, sessions.closeCalls, "session must be closed after the loop")

	// one inter-item delay for two items, none after the last
	require.GreaterOrEqual(t, elapsed, time.Second)
	require.Less(t, elapsed, 2*time.Second)
}

func TestBatchScanner_InitFailure(t *testing.T) {
	sessions := &stubSessions{initErr: errors.New("no browser")}

	_, err := prober.NewBatchScanner(&stubChecker{}, sessions).Scan(context.Background(), []string{"x"}, nil)
	require.Error(t, err)
}

func TestBatchScanner_ClosesSessionOnEarlyTermination(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	urls := []string{
		"https://cursor.com/referral?code=AAA",
		"https://cursor.com/referral?code=BBB",
		"https://cursor.com/referral?code=CCC",
	}
	// cancel mid-batch, right after the first probe
	checker := &stubChecker{results: map[string]domain.ProbeResult{}, onCheck: cancel}
	sessions := &stubSessions{}

	results, err := prober.NewBatchScanner(checker, sessions).Scan(ctx, urls, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1, "results gathered before termination are kept")
	require.Equal(t, 1, sessions.closeCalls, "session must be closed on early termination")
}
