package p2pclient

import (
	"github.com/libp2p/go-libp2p-core/peer"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

func newConnManagerRequest(req *pb.ConnManagerRequest) *pb.Request {
	return &pb.Request{
		Type:        pb.Request_CONNMANAGER.Enum(),
		ConnManager: req,
	}
}

// ConnManagerTagPeer implements §4.5's connmgr_tag_peer(peer, tag, weight),
// shaped by a ConnManagerTag (§4.5's data model) rather than three loose
// positional arguments.
func (c *Client) ConnManagerTagPeer(t ConnManagerTag) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	w := int64(t.Weight)
	req := newConnManagerRequest(&pb.ConnManagerRequest{
		Type:   pb.ConnManagerRequest_TAG_PEER.Enum(),
		Peer:   []byte(t.Peer),
		Tag:    &t.Tag,
		Weight: &w,
	})
	_, err := c.doRequest(req)
	return err
}

// ConnManagerUntagPeer implements §4.5's connmgr_untag_peer(peer, tag).
func (c *Client) ConnManagerUntagPeer(p peer.ID, tag string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	req := newConnManagerRequest(&pb.ConnManagerRequest{
		Type: pb.ConnManagerRequest_UNTAG_PEER.Enum(),
		Peer: []byte(p),
		Tag:  &tag,
	})
	_, err := c.doRequest(req)
	return err
}

// ConnManagerTrim implements §4.5's connmgr_trim().
func (c *Client) ConnManagerTrim() error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	req := newConnManagerRequest(&pb.ConnManagerRequest{
		Type: pb.ConnManagerRequest_TRIM.Enum(),
	})
	_, err := c.doRequest(req)
	return err
}
