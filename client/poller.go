package client

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openweb3-io/icp-evm/canister"
)

var (
	// ErrClientGone is returned by Start when the owning client has been
	// closed.
	ErrClientGone = errors.New("client has been closed")

	// ErrStreamingUnsupported is returned by IntoStream: every poll tick
	// is driven by the host timer facility, so a consumer-pulled stream
	// cannot exist in this execution model.
	ErrStreamingUnsupported = errors.New("streams cannot be used inside a canister")
)

// Handler consumes each successful poll result.
type Handler func(result json.RawMessage)

// PollerBuilder configures and runs a repeating JSON-RPC poll: one
// immediate call on Start, then one per timer tick until the success
// limit is reached or Stop is called. Parameters are serialized at most
// once across all ticks.
type PollerBuilder struct {
	client       Ref
	method       string
	params       any
	pollInterval time.Duration
	limit        uint64

	state *pollState
}

// NewPoller creates a poller for method. The interval defaults to the
// client's poll interval and no success limit is set.
func (c *Client) NewPoller(method string, params any) *PollerBuilder {
	interval := DefaultPollInterval
	if owner, ok := c.Ref().Get(); ok {
		interval = owner.PollInterval()
	}
	return &PollerBuilder{
		client:       c.Ref(),
		method:       method,
		params:       params,
		pollInterval: interval,
	}
}

// Method returns the polled JSON-RPC method.
func (p *PollerBuilder) Method() string {
	return p.method
}

// Limit returns the success limit, 0 meaning unbounded.
func (p *PollerBuilder) Limit() uint64 {
	return p.limit
}

// SetLimit sets the number of successful polls after which the schedule
// halts itself. 0 means unbounded.
func (p *PollerBuilder) SetLimit(limit uint64) {
	p.limit = limit
}

// WithLimit sets the success limit.
func (p *PollerBuilder) WithLimit(limit uint64) *PollerBuilder {
	p.SetLimit(limit)
	return p
}

// PollInterval returns the duration between polls.
func (p *PollerBuilder) PollInterval() time.Duration {
	return p.pollInterval
}

// SetPollInterval sets the duration between polls.
func (p *PollerBuilder) SetPollInterval(interval time.Duration) {
	p.pollInterval = interval
}

// WithPollInterval sets the duration between polls.
func (p *PollerBuilder) WithPollInterval(interval time.Duration) *PollerBuilder {
	p.SetPollInterval(interval)
	return p
}

// pollState is the mutable state shared across overlapping tick
// executions. mu keeps the counter, the cached params and the timer
// handle consistent across suspension points; handlerMu serializes
// handler invocations and is never held together with mu or across the
// relay call.
type pollState struct {
	timers canister.TimerScheduler

	mu       sync.Mutex
	params   paramsOnce
	count    uint64
	timerId  canister.TimerId
	timerSet bool
	cleared  bool

	handlerMu sync.Mutex
}

// clearTimer invalidates the timer handle. Safe to call more than once
// and before the handle has been assigned.
func (st *pollState) clearTimer() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.cleared {
		return
	}
	st.cleared = true
	if st.timerSet {
		st.timers.ClearTimer(st.timerId)
	}
}

// Start issues one immediate poll and registers a periodic timer that
// repeats it. The handler runs at most once per successful tick and never
// more than the configured limit in total; invocations are serialized, so
// overlapping ticks never call the handler concurrently, and a handler
// panic is isolated to its tick. Transport failures are logged and the
// schedule keeps ticking.
func (p *PollerBuilder) Start(handler Handler) (canister.TimerId, error) {
	owner, ok := p.client.Get()
	if !ok {
		return 0, ErrClientGone
	}

	st := &pollState{
		timers: owner.timers,
		params: paramsOnce{typed: p.params},
	}
	p.state = st

	client := p.client
	method := p.method
	limit := p.limit

	tick := func() {
		go func() {
			owner, ok := client.Get()
			if !ok {
				return
			}

			st.mu.Lock()
			params, err := st.params.get()
			st.mu.Unlock()
			if err != nil {
				zap.S().Errorw("failed to serialize poll params",
					"method", method,
					"error", err,
				)
				return
			}

			result, err := owner.Request(context.Background(), method, params)
			if err != nil {
				zap.S().Warnw("poll request failed",
					"method", method,
					"error", err,
				)
				return
			}

			st.mu.Lock()
			if limit > 0 && st.count >= limit {
				st.mu.Unlock()
				return
			}
			st.count++
			reached := limit > 0 && st.count >= limit
			st.mu.Unlock()

			func() {
				st.handlerMu.Lock()
				defer st.handlerMu.Unlock()
				defer func() {
					if r := recover(); r != nil {
						zap.S().Errorw("poll handler panicked",
							"method", method,
							"panic", r,
						)
					}
				}()
				handler(result)
			}()

			if reached {
				st.clearTimer()
			}
		}()
	}

	// Initial poll, outside the timer facility.
	tick()

	id := st.timers.SetTimerInterval(p.pollInterval, tick)

	st.mu.Lock()
	if st.cleared {
		// The limit was already reached during the initial poll.
		st.timers.ClearTimer(id)
	} else {
		st.timerId = id
		st.timerSet = true
	}
	st.mu.Unlock()

	return id, nil
}

// Stop halts the schedule. It is idempotent and safe after the limit has
// already been reached; a tick whose relay call is in flight still runs
// to completion.
func (p *PollerBuilder) Stop() {
	if p.state == nil {
		return
	}
	p.state.clearTimer()
}

// IntoStream is not supported in this execution model: ticks are pushed
// by the timer facility, never pulled by a consumer.
func (p *PollerBuilder) IntoStream() (<-chan json.RawMessage, error) {
	return nil, ErrStreamingUnsupported
}

// paramsOnce serializes the poll parameters at most once; every
// subsequent tick reuses the cached raw JSON. Accessed under the poll
// state mutex.
type paramsOnce struct {
	typed any
	raw   json.RawMessage
	done  bool
}

func (p *paramsOnce) get() (json.RawMessage, error) {
	if p.done {
		return p.raw, nil
	}
	raw, err := json.Marshal(p.typed)
	if err != nil {
		return nil, errors.Wrap(err, "marshal poll params")
	}
	p.raw = raw
	p.typed = nil
	p.done = true
	return p.raw, nil
}
