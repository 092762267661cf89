package p2pclient

import (
	"net"
	"testing"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/libp2p/go-libp2p-core/test"
	ma "github.com/multiformats/go-multiaddr"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
	"github.com/libp2p/go-libp2p-daemon-client/internal/testdaemon"
)

// TestClient_Identify covers §8 scenario 1: the daemon replies with a
// peer ID and a single listen address, and the client returns exactly
// that.
func TestClient_Identify(t *testing.T) {
	pid := test.RandPeerIDFatal(t)
	addr, err := ma.NewMultiaddr("/ip4/1.2.3.4/tcp/4001")
	requireNoError(t, err)

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		if req.GetType() != pb.Request_IDENTIFY {
			testdaemon.WriteResponse(conn, testdaemon.ErrResponse("unexpected request"))
			return
		}
		resp := testdaemon.OKResponse()
		resp.Identify = &pb.IdentifyResponse{
			Id:    []byte(pid),
			Addrs: [][]byte{addr.Bytes()},
		}
		testdaemon.WriteResponse(conn, resp)
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	gotID, gotAddrs, err := c.Identify()
	requireNoError(t, err)
	assertEqual(t, pid, gotID, "peer id")
	if len(gotAddrs) != 1 || !gotAddrs[0].Equal(addr) {
		t.Fatalf("want addrs [%s], got %v", addr, gotAddrs)
	}
}

// TestClient_Connect_ErrorPropagation covers §8 scenario 5: the daemon
// returns ERROR and the caller sees a ControlFailure with that message.
func TestClient_Connect_ErrorPropagation(t *testing.T) {
	pid := test.RandPeerIDFatal(t)

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		testdaemon.WriteResponse(conn, testdaemon.ErrResponse("no addresses"))
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	err = c.Connect(pid, nil)
	requireError(t, err)
	cf, ok := err.(*ControlFailure)
	if !ok {
		t.Fatalf("want *ControlFailure, got %T: %s", err, err)
	}
	assertEqual(t, "no addresses", cf.Msg, "error message")
}

// TestClient_Close_RejectsFurtherOperations covers §8's "after close(),
// any subsequent operation fails with ControlFailure".
func TestClient_Close_RejectsFurtherOperations(t *testing.T) {
	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		conn.Close()
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	requireNoError(t, c.Close())

	_, _, err = c.Identify()
	requireError(t, err)
	if _, ok := err.(*ControlFailure); !ok {
		t.Fatalf("want *ControlFailure, got %T", err)
	}
}

// TestClient_StreamOpen_EmptyProtoList covers §7's InvalidArgument:
// "caller-side precondition violation ... fails synchronously without
// any daemon round trip".
func TestClient_StreamOpen_EmptyProtoList(t *testing.T) {
	called := false
	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		called = true
		conn.Close()
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	_, _, err = c.StreamOpen(peer.ID("x"), nil)
	requireError(t, err)
	if _, ok := err.(*InvalidArgument); !ok {
		t.Fatalf("want *InvalidArgument, got %T", err)
	}
	if called {
		t.Fatal("daemon should not have been contacted")
	}
}
