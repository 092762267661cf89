// Package testdaemon is a minimal fake libp2p daemon used to exercise
// this client against the wire contract in tests, playing the role the
// teacher's beacon-chain/p2p/testing helper package plays for libp2p
// hosts in prysm's own test suite (§8's "end-to-end scenarios ... against
// a fake daemon").
package testdaemon

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	ggio "github.com/gogo/protobuf/io"
	logging "github.com/ipfs/go-log/v2"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

const messageSizeMax = 64 << 20

// log is scoped with go-log/v2 rather than the client package's own
// logrus logger: the fake daemon plays the role of the real p2pd
// binary in tests (which sets up its loggers via golog.SetAllLoggers),
// not the role of the client library itself.
var log = logging.Logger("testdaemon")

// Handler is invoked once per accepted control connection, after the
// initial Request frame has been read. It is responsible for writing
// whatever Response/DHTResponse/PSMessage frames the scenario calls
// for and for closing conn when done.
type Handler func(req *pb.Request, conn net.Conn)

// Daemon is a fake p2pd: it accepts control connections on a Unix
// socket and dispatches each to a Handler.
type Daemon struct {
	ControlAddr ma.Multiaddr

	ln   manet.Listener
	path string
	fn   Handler
}

// Start binds a fake daemon control socket under a fresh temp
// directory and begins accepting connections.
func Start(fn Handler) (*Daemon, error) {
	dir, err := os.MkdirTemp("", "p2pclient-testdaemon")
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "daemon-"+strconv.Itoa(os.Getpid())+".sock")

	maddr, err := ma.NewMultiaddr("/unix/" + path)
	if err != nil {
		return nil, err
	}
	ln, err := manet.Listen(maddr)
	if err != nil {
		return nil, err
	}

	d := &Daemon{ControlAddr: ln.Multiaddr(), ln: ln, path: path, fn: fn}
	go d.acceptLoop()
	return d, nil
}

func (d *Daemon) acceptLoop() {
	for {
		conn, err := d.ln.Accept()
		if err != nil {
			log.Debugw("accept loop stopping", "err", err)
			return
		}
		go d.serve(conn)
	}
}

func (d *Daemon) serve(conn net.Conn) {
	r := ggio.NewDelimitedReader(conn, messageSizeMax)
	req := &pb.Request{}
	if err := r.ReadMsg(req); err != nil {
		log.Debugw("failed to read request frame", "err", err)
		conn.Close()
		return
	}
	log.Debugw("dispatching request", "type", req.GetType())
	d.fn(req, conn)
}

// Close stops accepting new connections and removes the socket file.
func (d *Daemon) Close() error {
	err := d.ln.Close()
	os.Remove(d.path)
	return err
}

// DialBack opens a connection from the daemon's side to addr,
// simulating the daemon dialing into the client's listener for an
// inbound application stream (§4.3).
func DialBack(addr ma.Multiaddr) (net.Conn, error) {
	return manet.Dial(addr)
}

// WriteResponse is a small helper for Handlers to send a single
// Response frame — the common case for single-shot request/response
// operations. It does not close conn; the Handler still owns it.
func WriteResponse(conn net.Conn, resp *pb.Response) error {
	w := ggio.NewDelimitedWriter(conn)
	return w.WriteMsg(resp)
}

// NewWriter exposes a delimited writer for Handlers that need to send
// more than one frame (DHT streaming responses, pub/sub deliveries).
func NewWriter(conn net.Conn) ggio.WriteCloser {
	return ggio.NewDelimitedWriter(conn)
}

// OKResponse is a convenience constructor for a bare OK envelope.
func OKResponse() *pb.Response {
	return &pb.Response{Type: pb.Response_OK.Enum()}
}

// ErrResponse is a convenience constructor for an ERROR envelope.
func ErrResponse(msg string) *pb.Response {
	return &pb.Response{
		Type:  pb.Response_ERROR.Enum(),
		Error: &pb.ErrorResponse{Msg: &msg},
	}
}
