package prober

import (
	"context"
	"creditor/pkg/domain"
	"time"
)

// scanDelay is the fixed pause between batch items. Deliberate self-throttling
// against the external service's abuse detection; no parallel fan-out.
const scanDelay = time.Second

// Checker probes a single referral URL. Implemented by *Prober.
type Checker interface {
	Check(ctx context.Context, url string) domain.ProbeResult
}

// Sessions is the browser session lifecycle the batch scanner drives.
// Implemented by *SessionManager.
type Sessions interface {
	Init(ctx context.Context) error
	Close()
}

// Progress is invoked after each probed URL with its 1-based index, the batch
// total and the classification.
type Progress func(index, total int, result domain.ProbeResult)

// BatchScanner drives the prober over many URLs sequentially, reusing one
// browser session for the whole batch.
type BatchScanner struct {
	checker  Checker
	sessions Sessions
}

// NewBatchScanner creates a scanner probing through checker on the session
// owned by sessions.
func NewBatchScanner(checker Checker, sessions Sessions) *BatchScanner {
	return &BatchScanner{
		checker:  checker,
		sessions: sessions,
	}
}

// Scan probes every URL in order and returns the classification per URL.
// URLs are expected to be deduplicated already. The shared session is
// initialized before the loop and closed on every exit path, including early
// termination, so no browser process is leaked. A fixed delay separates
// consecutive probes (omitted after the last); failed probes classify as
// unknown and the batch continues.
func (b *BatchScanner) Scan(ctx context.Context,
	urls []string,
	onProgress Progress) (map[string]domain.ProbeResult, error) {
	if err := b.sessions.Init(ctx); err != nil {
		return nil, err
	}
	defer b.sessions.Close()

	results := make(map[string]domain.ProbeResult, len(urls))
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := b.checker.Check(ctx, url)
		results[url] = res

		if onProgress != nil {
			onProgress(i+1, len(urls), res)
		}

		if i < len(urls)-1 {
			select {
			case <-time.After(scanDelay):
			case <-ctx.Done():
				return results, ctx.Err()
			}
		}
	}

	return results, nil
}
