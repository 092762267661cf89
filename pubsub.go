package p2pclient

import (
	"net"
	"sync"

	"github.com/libp2p/go-libp2p-core/peer"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

// PubSubMessage is the richly-typed form of §3's PSMessage.
type PubSubMessage struct {
	From      peer.ID
	Data      []byte
	Seqno     []byte
	TopicIDs  []string
	Signature []byte
	Key       []byte
}

func convertPSMessage(m *pb.PSMessage) *PubSubMessage {
	var from peer.ID
	if id, err := peer.IDFromBytes(m.GetFrom()); err == nil {
		from = id
	}
	return &PubSubMessage{
		From:      from,
		Data:      m.GetData(),
		Seqno:     m.GetSeqno(),
		TopicIDs:  m.GetTopicIDs(),
		Signature: m.GetSignature(),
		Key:       m.GetKey(),
	}
}

// SubscriptionChannel is §3's queue-like abstraction backed by a
// background reader that continuously frame-reads PSMessages off the
// subscription's dedicated control connection (§4.5's pubsub_subscribe,
// §4.3's note that the subscription duplex is not a listener
// connection).
type SubscriptionChannel struct {
	msgs chan *PubSubMessage

	mu   sync.Mutex
	err  error
	done chan struct{}

	conn       net.Conn
	maxMsgSize int
}

// Messages returns the channel of delivered PSMessages, in the
// daemon's send order (§5's ordering guarantee). The channel is closed
// when the subscription is cancelled or the reader hits an error.
func (s *SubscriptionChannel) Messages() <-chan *PubSubMessage {
	return s.msgs
}

// Err returns the error that ended the subscription, if any (§7:
// "subscription becomes closed with an error sentinel").
func (s *SubscriptionChannel) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *SubscriptionChannel) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Cancel closes the subscription duplex and ends delivery (§4.5's
// "cancel() closes the duplex and marks the channel complete").
func (s *SubscriptionChannel) Cancel() {
	s.conn.Close()
	<-s.done
}

func (s *SubscriptionChannel) readLoop() {
	defer close(s.done)
	defer close(s.msgs)

	r := newDelimitedReaderSize(s.conn, s.maxMsgSize)
	for {
		msg := &pb.PSMessage{}
		if err := r.ReadMsg(msg); err != nil {
			s.setErr(wrapControlFailure("pubsub read", err))
			return
		}
		s.msgs <- convertPSMessage(msg)
	}
}

func newPubSubRequest(req *pb.PSRequest) *pb.Request {
	return &pb.Request{
		Type:   pb.Request_PUBSUB.Enum(),
		Pubsub: req,
	}
}

// PubSubGetTopics implements §4.5's pubsub_get_topics() → list[str].
func (c *Client) PubSubGetTopics() ([]string, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	req := newPubSubRequest(&pb.PSRequest{Type: pb.PSRequest_GET_TOPICS.Enum()})
	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	return resp.GetPubsub().GetTopics(), nil
}

// PubSubListPeers implements §4.5's pubsub_list_peers(topic) → list[PeerID].
func (c *Client) PubSubListPeers(topic string) ([]peer.ID, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	req := newPubSubRequest(&pb.PSRequest{
		Type:  pb.PSRequest_LIST_PEERS.Enum(),
		Topic: &topic,
	})
	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	ids := make([]peer.ID, 0, len(resp.GetPubsub().GetPeerIDs()))
	for _, raw := range resp.GetPubsub().GetPeerIDs() {
		id, err := peer.IDFromBytes(raw)
		if err != nil {
			return nil, wrapControlFailure("decode peer id", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PubSubPublish implements §4.5's pubsub_publish(topic, data).
func (c *Client) PubSubPublish(topic string, data []byte) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	req := newPubSubRequest(&pb.PSRequest{
		Type:  pb.PSRequest_PUBLISH.Enum(),
		Topic: &topic,
		Data:  data,
	})
	_, err := c.doRequest(req)
	return err
}

// PubSubSubscribe implements §4.5's pubsub_subscribe(topic) →
// (SubscriptionChannel, cancel): opens a long-lived control duplex,
// writes PUBSUB{SUBSCRIBE, topic}, reads the OK envelope, and hands the
// duplex to a background reader.
func (c *Client) PubSubSubscribe(topic string) (*SubscriptionChannel, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	req := newPubSubRequest(&pb.PSRequest{
		Type:  pb.PSRequest_SUBSCRIBE.Enum(),
		Topic: &topic,
	})
	_, conn, err := c.doRequestStream(req)
	if err != nil {
		return nil, err
	}

	sub := &SubscriptionChannel{
		msgs:       make(chan *PubSubMessage, 32),
		done:       make(chan struct{}),
		conn:       conn,
		maxMsgSize: c.maxMsgSize,
	}
	go sub.readLoop()
	return sub, nil
}
