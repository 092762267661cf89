package p2pclient

import (
	"net"
	"testing"

	"github.com/libp2p/go-libp2p-core/test"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
	"github.com/libp2p/go-libp2p-daemon-client/internal/testdaemon"
)

func TestConnManager_TagPeer(t *testing.T) {
	p := test.RandPeerIDFatal(t)
	var gotTag string
	var gotWeight int64

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		gotTag = req.GetConnManager().GetTag()
		gotWeight = req.GetConnManager().GetWeight()
		testdaemon.WriteResponse(conn, testdaemon.OKResponse())
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	requireNoError(t, c.ConnManagerTagPeer(ConnManagerTag{Peer: p, Tag: "important", Weight: 42}))
	assertEqual(t, "important", gotTag, "tag")
	assertEqual(t, int64(42), gotWeight, "weight")
}

func TestConnManager_Trim(t *testing.T) {
	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		if req.GetConnManager().GetType() != pb.ConnManagerRequest_TRIM {
			testdaemon.WriteResponse(conn, testdaemon.ErrResponse("unexpected request"))
			return
		}
		testdaemon.WriteResponse(conn, testdaemon.OKResponse())
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	requireNoError(t, c.ConnManagerTrim())
}
