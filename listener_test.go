package p2pclient

import (
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/libp2p/go-libp2p-core/test"
	ma "github.com/multiformats/go-multiaddr"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
	"github.com/libp2p/go-libp2p-daemon-client/internal/testdaemon"
)

// TestListener_HandlerDispatch covers §8 scenario 2: the fake daemon
// dials the client's listener, writes a StreamInfo followed by raw
// bytes, and the registered handler observes exactly those fields and
// bytes.
func TestListener_HandlerDispatch(t *testing.T) {
	peerB := test.RandPeerIDFatal(t)
	addrB, err := ma.NewMultiaddr("/ip4/127.0.0.1/tcp/7")
	requireNoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		switch req.GetType() {
		case pb.Request_STREAM_HANDLER:
			testdaemon.WriteResponse(conn, testdaemon.OKResponse())

			listenAddr, err := ma.NewMultiaddrBytes(req.GetStreamHandler().GetAddr())
			if err != nil {
				t.Errorf("bad listener addr: %s", err)
				return
			}
			back, err := testdaemon.DialBack(listenAddr)
			if err != nil {
				t.Errorf("dial back failed: %s", err)
				return
			}
			defer back.Close()

			proto := "/echo/1.0"
			w := testdaemon.NewWriter(back)
			if err := w.WriteMsg(&pb.StreamInfo{
				Peer:  []byte(peerB),
				Addr:  addrB.Bytes(),
				Proto: &proto,
			}); err != nil {
				t.Errorf("write stream info failed: %s", err)
				return
			}
			if _, err := back.Write([]byte("hi")); err != nil {
				t.Errorf("write payload failed: %s", err)
			}
		default:
			testdaemon.WriteResponse(conn, testdaemon.ErrResponse("unexpected request"))
		}
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	var gotInfo *pb.StreamInfo
	var gotPayload []byte
	err = c.StreamHandler("/echo/1.0", func(info *pb.StreamInfo, stream net.Conn) {
		defer stream.Close()
		gotInfo = info
		buf := make([]byte, 2)
		n, _ := stream.Read(buf)
		gotPayload = buf[:n]
		wg.Done()
	})
	requireNoError(t, err)

	if waitTimeout(&wg, 2*time.Second) {
		t.Fatal("handler was not invoked in time")
	}

	gotPeer, err := peer.IDFromBytes(gotInfo.GetPeer())
	requireNoError(t, err)
	assertEqual(t, peerB, gotPeer, "stream info peer")
	assertEqual(t, "/echo/1.0", gotInfo.GetProto(), "stream info proto")
	assertEqual(t, "hi", string(gotPayload), "payload")
}

// TestListener_DispatchMiss covers §4.3's "on miss: closes the stream"
// and §7's DispatchFailure: an inbound stream for an unregistered
// protocol is silently closed, not surfaced to any caller.
func TestListener_DispatchMiss(t *testing.T) {
	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		testdaemon.WriteResponse(conn, testdaemon.OKResponse())

		listenAddr, err := ma.NewMultiaddrBytes(req.GetStreamHandler().GetAddr())
		if err != nil {
			return
		}
		back, err := testdaemon.DialBack(listenAddr)
		if err != nil {
			return
		}
		defer back.Close()
		proto := "/unregistered/1.0"
		w := testdaemon.NewWriter(back)
		_ = w.WriteMsg(&pb.StreamInfo{Proto: &proto})
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	called := make(chan struct{})
	err = c.StreamHandler("/registered/1.0", func(info *pb.StreamInfo, stream net.Conn) {
		close(called)
	})
	requireNoError(t, err)

	select {
	case <-called:
		t.Fatal("handler should not have been invoked for a different protocol")
	case <-time.After(200 * time.Millisecond):
	}
}

// TestListener_ConcurrentRegistrationAndDispatch covers §8 scenario 6:
// two protocols register concurrently and both receive exactly one
// dispatch.
func TestListener_ConcurrentRegistrationAndDispatch(t *testing.T) {
	registered := make(chan string, 2)

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		testdaemon.WriteResponse(conn, testdaemon.OKResponse())
		proto := req.GetStreamHandler().GetProto()[0]
		registered <- proto

		listenAddr, err := ma.NewMultiaddrBytes(req.GetStreamHandler().GetAddr())
		if err != nil {
			return
		}
		back, err := testdaemon.DialBack(listenAddr)
		if err != nil {
			return
		}
		defer back.Close()
		w := testdaemon.NewWriter(back)
		_ = w.WriteMsg(&pb.StreamInfo{Proto: &proto})
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	seen := map[string]int{}

	record := func(proto string) StreamHandler {
		return func(info *pb.StreamInfo, stream net.Conn) {
			defer stream.Close()
			mu.Lock()
			seen[proto]++
			mu.Unlock()
			wg.Done()
		}
	}

	var regWg sync.WaitGroup
	regWg.Add(2)
	go func() {
		defer regWg.Done()
		requireNoError(t, c.StreamHandler("/a", record("/a")))
	}()
	go func() {
		defer regWg.Done()
		requireNoError(t, c.StreamHandler("/b", record("/b")))
	}()
	regWg.Wait()

	if waitTimeout(&wg, 2*time.Second) {
		t.Fatal("handlers were not both invoked in time")
	}

	assertEqual(t, 1, seen["/a"], "dispatch count for /a")
	assertEqual(t, 1, seen["/b"], "dispatch count for /b")
}

// TestBindListener_ReplacesStaleUnixSocket covers §8's boundary
// behavior "Stale Unix socket at listener path: detected and
// replaced": a leftover socket file with nothing listening on it (as a
// crashed process would leave behind) is unlinked and rebound rather
// than treated as in-use.
func TestBindListener_ReplacesStaleUnixSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p2pd.sock")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("failed to create stale socket file: %s", err)
	}

	maddr, err := ma.NewMultiaddr("/unix/" + path)
	requireNoError(t, err)

	ls, err := bindListener(maddr, newRegistry(), MessageSizeMax)
	requireNoError(t, err)
	defer ls.close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("want replaced socket file at %s, got %s", path, err)
	}
}

// TestBindListener_RefusesLiveUnixSocket covers the other half of §8's
// stale-socket scenario: a second bind attempt at a path a live
// listener already owns must refuse to steal it.
func TestBindListener_RefusesLiveUnixSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p2pd.sock")
	maddr, err := ma.NewMultiaddr("/unix/" + path)
	requireNoError(t, err)

	first, err := bindListener(maddr, newRegistry(), MessageSizeMax)
	requireNoError(t, err)
	defer first.close()

	_, err = bindListener(maddr, newRegistry(), MessageSizeMax)
	requireError(t, err)
	if _, ok := err.(*ControlFailure); !ok {
		t.Fatalf("want *ControlFailure, got %T", err)
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	c := make(chan struct{})
	go func() {
		wg.Wait()
		close(c)
	}()
	select {
	case <-c:
		return false
	case <-time.After(timeout):
		return true
	}
}
