package p2pclient

import (
	"github.com/libp2p/go-libp2p-core/peer"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

func newPeerstoreRequest(req *pb.PeerstoreRequest) *pb.Request {
	return &pb.Request{
		Type:      pb.Request_PEERSTORE.Enum(),
		PeerStore: req,
	}
}

// PeerstoreGetProtocols restores the protocol lookup operation the
// daemon's PEERSTORE request type already exposes on the wire
// (SPEC_FULL.md §6.5's supplement — the distilled spec names the
// PEERSTORE request type but never gives it client operations).
func (c *Client) PeerstoreGetProtocols(p peer.ID) ([]string, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	req := newPeerstoreRequest(&pb.PeerstoreRequest{
		Type: pb.PeerstoreRequest_GET_PROTOCOLS.Enum(),
		Peer: []byte(p),
	})
	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	return resp.GetPeerStore().GetProtos(), nil
}

// PeerstorePeerInfo returns the daemon's peerstore record for a peer.
func (c *Client) PeerstorePeerInfo(p peer.ID) (*PeerInfo, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	req := newPeerstoreRequest(&pb.PeerstoreRequest{
		Type: pb.PeerstoreRequest_PEER_INFO.Enum(),
		Peer: []byte(p),
	})
	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	return convertPbPeerInfo(resp.GetPeerStore().GetPeer())
}
