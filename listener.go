package p2pclient

import (
	"context"
	"net"
	"os"
	"strings"
	"time"

	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
	"github.com/libp2p/go-libp2p-daemon-client/internal/retry"
)

// acceptBackoff is how long the accept loop sleeps after a resource
// error (EMFILE and friends) before retrying (§9's open question,
// resolved here: log, sleep a small backoff, and continue).
const acceptBackoff = 100 * time.Millisecond

// listenerServer is the server the client itself runs, bound to the
// client's listener multiaddr, that accepts daemon-initiated
// connections for inbound application streams (§4.3). Pub/sub
// deliveries are NOT dispatched here — they arrive on the same duplex
// the subscribe request opened, owned by the subscription reader
// (§4.3's note on pub/sub not being a listener connection).
type listenerServer struct {
	ln         manet.Listener
	maddr      ma.Multiaddr
	reg        *registry
	maxMsgSize int
	unixPath   string // non-empty if this listener created a Unix socket file

	cancel context.CancelFunc
	done   chan struct{}
}

// bindListener implements §4.3's bind(listen_maddr): parses the family,
// probes and replaces a stale Unix socket file, then starts accepting.
func bindListener(maddr ma.Multiaddr, reg *registry, maxMsgSize int) (*listenerServer, error) {
	var unixPath string
	if isUnix(maddr) {
		path, err := maddr.ValueForProtocol(ma.P_UNIX)
		if err != nil {
			return nil, wrapControlFailure("listener addr", err)
		}
		unixPath = path
		if err := replaceStaleUnixSocket(maddr, path); err != nil {
			return nil, err
		}
	}

	ln, err := listen(maddr)
	if err != nil {
		return nil, wrapControlFailure("bind listener", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ls := &listenerServer{
		ln:         ln,
		maddr:      ln.Multiaddr(),
		reg:        reg,
		maxMsgSize: maxMsgSize,
		unixPath:   unixPath,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	go ls.acceptLoop(ctx)
	return ls, nil
}

// replaceStaleUnixSocket implements §8's "stale Unix socket at listener
// path: detected and replaced": a zero-length connect probes whether the
// existing socket file is live; if it is, refuse to steal it, otherwise
// unlink and proceed.
func replaceStaleUnixSocket(maddr ma.Multiaddr, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return wrapControlFailure("stat unix socket", err)
	}

	if conn, err := net.DialTimeout("unix", path, 50*time.Millisecond); err == nil {
		conn.Close()
		return newControlFailure("listener", "unix socket at "+path+" is already in use")
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return wrapControlFailure("remove stale unix socket", err)
	}
	return nil
}

func (ls *listenerServer) acceptLoop(ctx context.Context) {
	defer close(ls.done)
	for {
		conn, err := ls.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if isTemporary(err) {
				log.WithError(err).Warn("listener accept error, backing off")
				if retry.Sleep(ctx, acceptBackoff) {
					return
				}
				continue
			}
			log.WithError(err).Error("listener accept failed, stopping")
			return
		}
		go ls.onAccept(conn)
	}
}

func isTemporary(err error) bool {
	type temporary interface {
		Temporary() bool
	}
	if te, ok := err.(temporary); ok {
		return te.Temporary()
	}
	return strings.Contains(err.Error(), "too many open files")
}

// onAccept implements §4.3's on_accept: read exactly one framed
// StreamInfo, dispatch by proto, and never block the accept loop on
// handler execution.
func (ls *listenerServer) onAccept(conn net.Conn) {
	r := newDelimitedReaderSize(conn, ls.maxMsgSize)
	info := &pb.StreamInfo{}
	if err := r.ReadMsg(info); err != nil {
		log.WithError(err).Debug("failed to read StreamInfo on inbound connection")
		conn.Close()
		return
	}

	handler, ok := ls.reg.get(info.GetProto())
	if !ok {
		log.WithError(&DispatchFailure{Proto: info.GetProto()}).Debug("dropping inbound stream")
		conn.Close()
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("stream handler for %q panicked: %v", info.GetProto(), r)
			}
		}()
		handler(info, conn)
	}()
}

func (ls *listenerServer) close() error {
	ls.cancel()
	err := ls.ln.Close()
	<-ls.done
	if ls.unixPath != "" {
		_ = os.Remove(ls.unixPath)
	}
	return err
}
