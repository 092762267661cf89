package p2pclient

import (
	"net"
	"testing"

	"github.com/libp2p/go-libp2p-core/test"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
	"github.com/libp2p/go-libp2p-daemon-client/internal/testdaemon"
)

func TestPeerstore_GetProtocols(t *testing.T) {
	target := test.RandPeerIDFatal(t)

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		if req.GetPeerStore().GetType() != pb.PeerstoreRequest_GET_PROTOCOLS {
			testdaemon.WriteResponse(conn, testdaemon.ErrResponse("unexpected request"))
			return
		}
		resp := testdaemon.OKResponse()
		resp.PeerStore = &pb.PeerstoreResponse{Protos: []string{"/echo/1.0", "/chat/1.0"}}
		testdaemon.WriteResponse(conn, resp)
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	protos, err := c.PeerstoreGetProtocols(target)
	requireNoError(t, err)
	if len(protos) != 2 || protos[0] != "/echo/1.0" || protos[1] != "/chat/1.0" {
		t.Fatalf("unexpected protocols: %v", protos)
	}
}

func TestPeerstore_PeerInfo(t *testing.T) {
	target := test.RandPeerIDFatal(t)

	d, err := testdaemon.Start(func(req *pb.Request, conn net.Conn) {
		defer conn.Close()
		resp := testdaemon.OKResponse()
		resp.PeerStore = &pb.PeerstoreResponse{
			Peer: &pb.PeerInfo{Id: []byte(target)},
		}
		testdaemon.WriteResponse(conn, resp)
	})
	requireNoError(t, err)
	defer d.Close()

	c, err := New(d.ControlAddr)
	requireNoError(t, err)
	defer c.Close()

	info, err := c.PeerstorePeerInfo(target)
	requireNoError(t, err)
	assertEqual(t, target, info.ID, "peer info id")
}
