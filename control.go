package p2pclient

import (
	"net"

	ma "github.com/multiformats/go-multiaddr"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

// newControlConn dials a fresh connection to the daemon's control
// multiaddr (§4.2). Every request gets its own connection: no
// multiplexing, no correlation IDs, no head-of-line blocking, because
// the daemon is local and the dial cost is negligible.
func (c *Client) newControlConn() (net.Conn, error) {
	conn, err := dialControl(c.controlAddr)
	if err != nil {
		return nil, wrapControlFailure("dial control", err)
	}
	return conn, nil
}

// doRequest opens a fresh control connection, writes req, reads one
// Response, and closes the connection (§4.2's request contract).
func (c *Client) doRequest(req *pb.Request) (*pb.Response, error) {
	conn, err := c.newControlConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	w := newDelimitedWriter(conn)
	if err := w.WriteMsg(req); err != nil {
		return nil, wrapControlFailure("write request", err)
	}

	r := newDelimitedReaderSize(conn, c.maxMsgSize)
	resp := &pb.Response{}
	if err := r.ReadMsg(resp); err != nil {
		return nil, wrapControlFailure("read response", err)
	}
	if resp.GetType() == pb.Response_ERROR {
		return nil, newControlFailure("daemon", resp.GetError().GetMsg())
	}
	return resp, nil
}

// doRequestStream opens a fresh control connection, writes req, reads
// one Response envelope, and — if OK — returns the envelope together
// with the still-open connection for the caller to keep reading from
// (§4.2's request_stream contract: used by stream_open and by
// pub/sub subscribe; DHT streaming queries open their own connection,
// see peerStreamRequest).
func (c *Client) doRequestStream(req *pb.Request) (*pb.Response, net.Conn, error) {
	conn, err := c.newControlConn()
	if err != nil {
		return nil, nil, err
	}

	w := newDelimitedWriter(conn)
	if err := w.WriteMsg(req); err != nil {
		conn.Close()
		return nil, nil, wrapControlFailure("write request", err)
	}

	r := newDelimitedReaderSize(conn, c.maxMsgSize)
	resp := &pb.Response{}
	if err := r.ReadMsg(resp); err != nil {
		conn.Close()
		return nil, nil, wrapControlFailure("read response", err)
	}
	if resp.GetType() == pb.Response_ERROR {
		conn.Close()
		return nil, nil, newControlFailure("daemon", resp.GetError().GetMsg())
	}
	return resp, conn, nil
}

// controlMultiaddrBytes returns the listener multiaddr's byte encoding,
// used as the STREAM_HANDLER request's addr field (§4.4).
func controlMultiaddrBytes(maddr ma.Multiaddr) []byte {
	return maddr.Bytes()
}
