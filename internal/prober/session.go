// Package prober determines whether referral codes are still redeemable by
// driving a headless browser against the external service and observing the
// status-check API call the referral page makes. Probes never return errors;
// every failure degrades to an unknown classification because probes run
// unattended inside batches where one bad response must not abort the run.
package prober

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// SessionManager owns one reusable browser tab shared across a batch of
// probes, amortizing the browser launch cost. It is an explicitly scoped
// resource: callers pair Init with Close, and only one logical scan may use
// it at a time.
type SessionManager struct {
	headless bool

	tab         context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
}

// NewSessionManager creates a manager that will launch the browser with or
// without a visible window.
func NewSessionManager(headless bool) *SessionManager {
	return &SessionManager{headless: headless}
}

// execOptions builds the browser launch flags.
func execOptions(headless bool) []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
	)
}

// Init launches the shared browser and opens one tab. It is idempotent:
// calling it while a session exists is a no-op.
func (m *SessionManager) Init(ctx context.Context) error {
	if m.tab != nil {
		return nil
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, execOptions(m.headless)...)
	tab, tabCancel := chromedp.NewContext(allocCtx)

	// launch eagerly and enable network events so probes only have to navigate
	if err := chromedp.Run(tab, network.Enable()); err != nil {
		tabCancel()
		allocCancel()

		return fmt.Errorf("could not launch browser: %w", err)
	}

	m.tab = tab
	m.tabCancel = tabCancel
	m.allocCancel = allocCancel

	return nil
}

// Close tears the shared browser down and clears the session. Safe to call
// when no session exists.
func (m *SessionManager) Close() {
	if m.tab == nil {
		return
	}

	m.tabCancel()
	m.allocCancel()
	m.tab = nil
	m.tabCancel = nil
	m.allocCancel = nil
}

// Page returns the shared tab context, or false when Init has not run.
func (m *SessionManager) Page() (context.Context, bool) {
	if m.tab == nil {
		return nil, false
	}

	return m.tab, true
}
