package p2pclient

import (
	"net"
	"sync"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

// StreamHandler consumes a duplex byte stream opened for a registered
// protocol (§3's ProtocolHandler). The stream is owned by the handler
// for the call's duration; closing it is the handler's responsibility.
type StreamHandler func(info *pb.StreamInfo, stream net.Conn)

// registry maps a protocol identifier to its handler (§4.4). It is
// mutated by StreamHandler registration and read by the listener's
// accept loop, so it is guarded by a mutex even though a conforming
// single-threaded implementation would not strictly need one (§5).
type registry struct {
	mu       sync.Mutex
	handlers map[string]StreamHandler
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]StreamHandler)}
}

func (r *registry) set(proto string, h StreamHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[proto] = h
}

func (r *registry) get(proto string) (StreamHandler, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handlers[proto]
	return h, ok
}
