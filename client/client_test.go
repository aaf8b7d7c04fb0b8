package client_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/icp-evm/canister"
	"github.com/openweb3-io/icp-evm/client"
	"github.com/openweb3-io/icp-evm/transport"
	"github.com/openweb3-io/icp-evm/types"
)

// relayStub is a thread-safe EVM RPC canister stand-in. The first
// failFirst calls are rejected at the call layer; the rest reply with
// the configured response body. A gate, when set before any call is
// issued, holds every reply until the channel is closed.
type relayStub struct {
	mu        sync.Mutex
	calls     int
	failFirst int
	response  string
	gate      chan struct{}
}

func (s *relayStub) Request(ctx context.Context, service types.RpcService, body string, maxResponseBytes uint64, cycles *big.Int) (*canister.RequestResult, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()

	if s.gate != nil {
		<-s.gate
	}
	if n <= s.failFirst {
		return nil, &canister.RejectError{Code: types.RejectSysTransient, Message: "out of capacity"}
	}
	text := s.response
	return &canister.RequestResult{Ok: &text}, nil
}

func (s *relayStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// fakeTimers is a TimerScheduler driven by the test instead of the
// clock.
type fakeTimers struct {
	mu      sync.Mutex
	nextId  canister.TimerId
	fns     map[canister.TimerId]func()
	cleared []canister.TimerId
}

func newFakeTimers() *fakeTimers {
	return &fakeTimers{fns: make(map[canister.TimerId]func())}
}

func (f *fakeTimers) SetTimerInterval(interval time.Duration, fn func()) canister.TimerId {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextId++
	f.fns[f.nextId] = fn
	return f.nextId
}

func (f *fakeTimers) ClearTimer(id canister.TimerId) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fns[id]; ok {
		delete(f.fns, id)
		f.cleared = append(f.cleared, id)
	}
}

// tick fires the timer once, as the host would on an interval boundary.
func (f *fakeTimers) tick(id canister.TimerId) {
	f.mu.Lock()
	fn := f.fns[id]
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *fakeTimers) clearCount(id canister.TimerId) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, cleared := range f.cleared {
		if cleared == id {
			count++
		}
	}
	return count
}

func newTestClient(stub *relayStub, timers *fakeTimers) *client.Client {
	tr := transport.New(stub, transport.NewConfig(types.NewEthSepoliaService(types.EthSepoliaPublicNode)))
	return client.New(tr, client.WithTimers(timers), client.WithPollInterval(time.Millisecond))
}

func TestClientRequest(t *testing.T) {
	stub := &relayStub{response: `{"jsonrpc":"2.0","id":1,"result":"0x64"}`}
	c := newTestClient(stub, newFakeTimers())

	result, err := c.Request(context.Background(), "eth_blockNumber", nil)
	require.NoError(t, err)
	require.JSONEq(t, `"0x64"`, string(result))
}

func TestClientRequestJsonRpcError(t *testing.T) {
	stub := &relayStub{response: `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"header not found"}}`}
	c := newTestClient(stub, newFakeTimers())

	_, err := c.Request(context.Background(), "eth_getBalance", []any{"0x0", "latest"})
	require.Error(t, err)

	var rpcErr *types.JsonRpcError
	require.True(t, errors.As(err, &rpcErr))
	require.Equal(t, int64(-32000), rpcErr.Code)
}

func TestClientRequestTransportError(t *testing.T) {
	stub := &relayStub{failFirst: 1}
	c := newTestClient(stub, newFakeTimers())

	_, err := c.Request(context.Background(), "eth_blockNumber", nil)
	require.Error(t, err)

	var terr *transport.Error
	require.True(t, errors.As(err, &terr))
	require.Equal(t, transport.KindInfra, terr.Kind)
}

func TestRefReportsOwnerGone(t *testing.T) {
	c := newTestClient(&relayStub{}, newFakeTimers())
	ref := c.Ref()

	_, ok := ref.Get()
	require.True(t, ok)

	c.Close()
	_, ok = ref.Get()
	require.False(t, ok)
}
