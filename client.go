package p2pclient

import (
	"net"
	"sync"

	"github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

// Client is the facade over the daemon control protocol (§4.5). It owns
// exactly one control endpoint; every public operation is rooted in a
// Client instance — there is no process-wide state, and tests may
// construct as many Clients as they like (§9's "singleton-free
// design").
type Client struct {
	controlAddr ma.Multiaddr
	listenAddr  ma.Multiaddr
	maxMsgSize  int

	mu       sync.Mutex
	ln       *listenerServer
	reg      *registry
	closed   bool
	listened bool
}

// New builds a Client bound to the given control multiaddr. The
// listener is not started until Listen is called or a StreamHandler is
// registered (§3's lifecycle: "created → listen() ... → operational").
func New(controlAddr ma.Multiaddr, opts ...ClientOption) (*Client, error) {
	c := &Client{
		controlAddr: controlAddr,
		maxMsgSize:  MessageSizeMax,
		reg:         newRegistry(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewClient parses control and (optional) listen multiaddr strings and
// builds a Client, convenient for callers that don't already hold
// ma.Multiaddr values.
func NewClient(control string, listenAddr string) (*Client, error) {
	controlMaddr, err := ma.NewMultiaddr(control)
	if err != nil {
		return nil, newInvalidArgument("invalid control multiaddr %q: %s", control, err)
	}
	var opts []ClientOption
	if listenAddr != "" {
		opts = append(opts, WithListenAddrString(listenAddr))
	}
	return New(controlMaddr, opts...)
}

// Listen binds the client's listener socket (§3's invariant: "the
// listener multiaddr is either explicitly provided or auto-synthesized
// to match the control endpoint's family"). Idempotent.
func (c *Client) Listen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listenLocked()
}

func (c *Client) listenLocked() error {
	if c.closed {
		return newControlFailure("listen", "client is closed")
	}
	if c.listened {
		return nil
	}

	listenAddr := c.listenAddr
	if listenAddr == nil {
		addr, err := defaultListenAddr(c.controlAddr)
		if err != nil {
			return err
		}
		listenAddr = addr
	}

	ln, err := bindListener(listenAddr, c.reg, c.maxMsgSize)
	if err != nil {
		return err
	}
	c.ln = ln
	c.listenAddr = ln.maddr
	c.listened = true
	return nil
}

// Close stops the listener, if any, and marks the client unusable
// (§3's lifecycle, §7's "no broken terminal state short of explicit
// close()"). Any operation after Close fails with ControlFailure.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.ln != nil {
		return c.ln.close()
	}
	return nil
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return newControlFailure("", "client is closed")
	}
	return nil
}

// Identify implements §4.5's identify().
func (c *Client) Identify() (peer.ID, []ma.Multiaddr, error) {
	if err := c.checkOpen(); err != nil {
		return "", nil, err
	}

	req := &pb.Request{Type: pb.Request_IDENTIFY.Enum()}
	resp, err := c.doRequest(req)
	if err != nil {
		return "", nil, err
	}

	id, err := peer.IDFromBytes(resp.GetIdentify().GetId())
	if err != nil {
		return "", nil, wrapControlFailure("decode peer id", err)
	}

	addrs := make([]ma.Multiaddr, 0, len(resp.GetIdentify().GetAddrs()))
	for _, raw := range resp.GetIdentify().GetAddrs() {
		addr, err := ma.NewMultiaddrBytes(raw)
		if err != nil {
			return "", nil, wrapControlFailure("decode listen addr", err)
		}
		addrs = append(addrs, addr)
	}

	return id, addrs, nil
}

// Connect implements §4.5's connect(peer, addrs).
func (c *Client) Connect(p peer.ID, addrs []ma.Multiaddr) error {
	if err := c.checkOpen(); err != nil {
		return err
	}

	addrBytes := make([][]byte, len(addrs))
	for i, a := range addrs {
		addrBytes[i] = a.Bytes()
	}

	req := &pb.Request{
		Type: pb.Request_CONNECT.Enum(),
		Connect: &pb.ConnectRequest{
			Peer:  []byte(p),
			Addrs: addrBytes,
		},
	}
	_, err := c.doRequest(req)
	return err
}

// Disconnect implements §4.5's disconnect(peer).
func (c *Client) Disconnect(p peer.ID) error {
	if err := c.checkOpen(); err != nil {
		return err
	}

	req := &pb.Request{
		Type:       pb.Request_DISCONNECT.Enum(),
		Disconnect: &pb.DisconnectRequest{Peer: []byte(p)},
	}
	_, err := c.doRequest(req)
	return err
}

// ListPeers implements §4.5's list_peers().
func (c *Client) ListPeers() ([]*PeerInfo, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	req := &pb.Request{Type: pb.Request_LIST_PEERS.Enum()}
	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}

	peers := make([]*PeerInfo, 0, len(resp.GetPeers().GetPeers()))
	for _, pbi := range resp.GetPeers().GetPeers() {
		info, err := convertPbPeerInfo(pbi)
		if err != nil {
			return nil, err
		}
		peers = append(peers, info)
	}
	return peers, nil
}

// StreamOpen implements §4.5's stream_open(peer, protos). The first
// frame on the returned connection has already been consumed to
// produce the StreamInfo; the caller owns the connection from there.
func (c *Client) StreamOpen(p peer.ID, protos []string) (*pb.StreamInfo, net.Conn, error) {
	if err := c.checkOpen(); err != nil {
		return nil, nil, err
	}
	if len(protos) == 0 {
		return nil, nil, newInvalidArgument("stream_open requires at least one protocol")
	}

	req := &pb.Request{
		Type: pb.Request_STREAM_OPEN.Enum(),
		StreamOpen: &pb.StreamOpenRequest{
			Peer:  []byte(p),
			Proto: protos,
		},
	}
	_, conn, err := c.doRequestStream(req)
	if err != nil {
		return nil, nil, err
	}

	r := newDelimitedReaderSize(conn, c.maxMsgSize)
	info := &pb.StreamInfo{}
	if err := r.ReadMsg(info); err != nil {
		conn.Close()
		return nil, nil, wrapControlFailure("read stream info", err)
	}

	return info, conn, nil
}

// StreamHandler implements §4.4's stream_handler_register(proto,
// handler): binds the listener if needed, registers with the daemon,
// and — only once the daemon acknowledges — commits the local mapping
// (§3's registry invariant).
func (c *Client) StreamHandler(proto string, handler StreamHandler) error {
	c.mu.Lock()
	if err := func() error {
		if c.closed {
			return newControlFailure("stream_handler", "client is closed")
		}
		return c.listenLocked()
	}(); err != nil {
		c.mu.Unlock()
		return err
	}
	listenAddr := c.listenAddr
	c.mu.Unlock()

	req := &pb.Request{
		Type: pb.Request_STREAM_HANDLER.Enum(),
		StreamHandler: &pb.StreamHandlerRequest{
			Addr:  controlMultiaddrBytes(listenAddr),
			Proto: []string{proto},
		},
	}
	if _, err := c.doRequest(req); err != nil {
		return err
	}

	c.reg.set(proto, handler)
	return nil
}
