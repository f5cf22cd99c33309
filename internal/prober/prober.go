package prober

import (
	"context"
	"creditor/pkg/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	// probeTimeout bounds one probe. Fixed by design: probes either settle
	// within this window or classify as unknown.
	probeTimeout = 15 * time.Second

	// statusCheckPath is the path fragment of the status-check API call the
	// referral page makes; the response observer matches on it.
	statusCheckPath = "/api/dashboard/check-referral-code"
)

// Prober classifies referral URLs by navigating to them and racing a network
// response observer against a fixed timeout. It uses the shared session when
// one is initialized and falls back to a disposable browser, closed right
// after use, for ad-hoc probes.
type Prober struct {
	sessions *SessionManager
	headless bool
	pattern  *regexp.Regexp
}

// New creates a Prober for referral URLs on the given service host. sessions
// may be nil; every probe then launches its own disposable browser.
func New(host string, headless bool, sessions *SessionManager) *Prober {
	return &Prober{
		sessions: sessions,
		headless: headless,
		pattern:  domain.ReferralPattern(host),
	}
}

// ExtractCode pulls the referral code out of a URL. Returns false when the
// URL does not match the referral pattern.
func (p *Prober) ExtractCode(url string) (string, bool) {
	m := p.pattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}

	return m[1], true
}

func unknown(checkedAt time.Time, msgFmt string, args ...any) domain.ProbeResult {
	return domain.ProbeResult{
		Status:    domain.ProbeUnknown,
		CheckedAt: checkedAt,
		Err:       fmt.Sprintf(msgFmt, args...),
	}
}

// Classify maps one observed status-check response to a probe outcome:
//   - non-200 status: unknown
//   - {"isValid": true, "userIsEligible": true, ...}: available, amount from
//     metadata.amount with a default of domain.DefaultCreditAmount
//   - {"isValid": ...} otherwise: redeemed
//   - {}: redeemed
//   - anything else (parse failure, non-object, unrecognized shape): unknown
func Classify(status int, body []byte) domain.ProbeResult {
	if status != http.StatusOK {
		return domain.ProbeResult{Status: domain.ProbeUnknown, Err: fmt.Sprintf("unexpected status %d", status)}
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return domain.ProbeResult{Status: domain.ProbeUnknown, Err: "could not parse response body"}
	}
	if obj == nil {
		// "null" parses fine but is not an object
		return domain.ProbeResult{Status: domain.ProbeUnknown, Err: "unrecognized response shape"}
	}

	if _, present := obj["isValid"]; present {
		isValid, _ := obj["isValid"].(bool)
		eligible, _ := obj["userIsEligible"].(bool)
		if isValid && eligible {
			amount := domain.DefaultCreditAmount
			if md, ok := obj["metadata"].(map[string]any); ok {
				if a, ok := md["amount"].(float64); ok {
					amount = int(a)
				}
			}

			return domain.ProbeResult{Status: domain.ProbeAvailable, Amount: amount}
		}

		return domain.ProbeResult{Status: domain.ProbeRedeemed}
	}

	if len(obj) == 0 {
		// the service answers an empty object for spent codes
		return domain.ProbeResult{Status: domain.ProbeRedeemed}
	}

	return domain.ProbeResult{Status: domain.ProbeUnknown, Err: "unrecognized response shape"}
}

// Check probes one referral URL. It never returns an error: navigation
// failures, timeouts and malformed responses all classify as unknown with an
// informational message.
func (p *Prober) Check(ctx context.Context, url string) domain.ProbeResult {
	checkedAt := time.Now().UTC()

	if _, ok := p.ExtractCode(url); !ok {
		return unknown(checkedAt, "could not extract referral code from URL")
	}

	tab, cleanup, err := p.page(ctx)
	if err != nil {
		return unknown(checkedAt, "could not open browser: %v", err)
	}
	defer cleanup()

	res := p.checkInBrowser(tab, url)
	res.CheckedAt = checkedAt

	return res
}

// page returns the tab to probe on: the shared session when initialized,
// otherwise a disposable one-off browser whose cleanup closes it.
func (p *Prober) page(ctx context.Context) (context.Context, func(), error) {
	if p.sessions != nil {
		if tab, ok := p.sessions.Page(); ok {
			return tab, func() {}, nil
		}
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, execOptions(p.headless)...)
	tab, tabCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(tab, network.Enable()); err != nil {
		tabCancel()
		allocCancel()

		return nil, nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return tab, func() {
		tabCancel()
		allocCancel()
	}, nil
}

// checkInBrowser races the response observer against the probe timeout.
// Whichever settles first wins; the loser is cancelled (the listener is
// detached by cancelling its derived context, the timer is stopped by the
// deferred Stop) and its result discarded via the buffered channel.
func (p *Prober) checkInBrowser(tab context.Context, url string) domain.ProbeResult {
	// detaching the listener on every exit path avoids handler leaks on a
	// reused page
	listenCtx, detach := context.WithCancel(tab)
	defer detach()

	results := make(chan domain.ProbeResult, 1)
	settle := func(res domain.ProbeResult) {
		select {
		case results <- res:
		default: // already settled, discard
		}
	}

	// watchedID is only touched from the target's event goroutine, which
	// delivers events sequentially
	var watchedID network.RequestID
	chromedp.ListenTarget(listenCtx, func(ev interface{}) {
		switch e := ev.(type) {
		case *network.EventResponseReceived:
			if !strings.Contains(e.Response.URL, statusCheckPath) {
				return
			}
			if e.Response.Status != http.StatusOK {
				settle(Classify(int(e.Response.Status), nil))

				return
			}
			watchedID = e.RequestID
		case *network.EventLoadingFinished:
			if watchedID == "" || e.RequestID != watchedID {
				return
			}
			id := e.RequestID
			// the body must be fetched off the event goroutine, and only
			// after loading finished
			go func() {
				c := chromedp.FromContext(tab)
				body, err := network.GetResponseBody(id).Do(cdp.WithExecutor(tab, c.Target))
				if err != nil {
					settle(domain.ProbeResult{Status: domain.ProbeUnknown, Err: "could not read response body"})

					return
				}
				settle(Classify(http.StatusOK, body))
			}()
		}
	})

	navErr := make(chan error, 1)
	go func() {
		navErr <- chromedp.Run(tab, chromedp.Navigate(url))
	}()

	timer := time.NewTimer(probeTimeout)
	defer timer.Stop()

	for {
		select {
		case res := <-results:
			return res
		case err := <-navErr:
			if err != nil {
				return domain.ProbeResult{Status: domain.ProbeUnknown, Err: fmt.Sprintf("navigation failed: %v", err)}
			}
			// navigation landed; keep waiting for the observer or the timer
			navErr = nil
		case <-timer.C:
			return domain.ProbeResult{Status: domain.ProbeUnknown, Err: "timed out waiting for status response"}
		case <-tab.Done():
			return domain.ProbeResult{Status: domain.ProbeUnknown, Err: "browser session closed"}
		}
	}
}
