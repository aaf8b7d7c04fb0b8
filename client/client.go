package client

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/openweb3-io/icp-evm/canister"
	"github.com/openweb3-io/icp-evm/transport"
	"github.com/openweb3-io/icp-evm/types"
)

// DefaultPollInterval is the fallback interval for pollers that cannot
// consult their owning client.
const DefaultPollInterval = 7 * time.Second

// Client is a thin JSON-RPC client over a relay transport. It assigns
// request ids, sends one envelope per call and unwraps JSON-RPC level
// errors.
type Client struct {
	transport    *transport.Transport
	timers       canister.TimerScheduler
	pollInterval time.Duration

	mu     sync.Mutex
	nextId uint64
	closed bool
}

type Option func(*Client)

// WithPollInterval sets the default interval for pollers created from
// this client.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

// WithTimers sets the timer facility pollers register with.
func WithTimers(timers canister.TimerScheduler) Option {
	return func(c *Client) {
		c.timers = timers
	}
}

func New(t *transport.Transport, opts ...Option) *Client {
	c := &Client{
		transport:    t,
		timers:       canister.NewTimers(),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request issues a single JSON-RPC call through the transport and returns
// the raw result. A JSON-RPC level error in the response surfaces as
// *types.JsonRpcError; transport failures as *transport.Error.
func (c *Client) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	c.mu.Lock()
	c.nextId++
	id := c.nextId
	c.mu.Unlock()

	resp, err := c.transport.Send(ctx, types.NewRequest(id, method, params))
	if err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}

// PollInterval returns the default interval for pollers created from this
// client.
func (c *Client) PollInterval() time.Duration {
	return c.pollInterval
}

// Close marks the client gone. Ref handles stop resolving and no new poll
// schedule can start; ticks already in flight run to completion.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// Ref returns a non-owning lookup handle to the client.
func (c *Client) Ref() Ref {
	return Ref{c: c}
}

// Ref is a non-owning handle to a Client. Get reports false once the
// owner has been closed, so a holder can fail fast instead of operating
// on a dead client.
type Ref struct {
	c *Client
}

func (r Ref) Get() (*Client, bool) {
	if r.c == nil {
		return nil, false
	}
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if r.c.closed {
		return nil, false
	}
	return r.c, true
}
