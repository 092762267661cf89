package p2pclient

import (
	"io"

	ggio "github.com/gogo/protobuf/io"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

// MessageSizeMax bounds a single varint-length-delimited frame (§4.1,
// §9): the daemon doesn't pin a wire limit, so this is our recommended
// cap, not a protocol guarantee.
const MessageSizeMax = 64 << 20 // 64 MiB

// newDelimitedReader wraps conn in a varint-length-delimited protobuf
// reader (§4.1), capped at MessageSizeMax. This is the same mechanism
// go-libp2p-daemon's own client uses: gogo/protobuf/io, not a
// hand-rolled varint reader.
func newDelimitedReader(r io.Reader) ggio.ReadCloser {
	return newDelimitedReaderSize(r, MessageSizeMax)
}

// newDelimitedReaderSize is newDelimitedReader with a caller-supplied
// cap, used where a Client has overridden the default via
// WithMaxMessageSize.
func newDelimitedReaderSize(r io.Reader, max int) ggio.ReadCloser {
	return ggio.NewDelimitedReader(r, max)
}

// newDelimitedWriter wraps conn in a varint-length-delimited protobuf
// writer (§4.1).
func newDelimitedWriter(w io.Writer) ggio.WriteCloser {
	return ggio.NewDelimitedWriter(w)
}

// readDHTResponseStream consumes the initial Response envelope (which
// must carry dht.type == BEGIN) and returns a channel fed by a
// background goroutine that frame-reads DHTResponse messages until a
// DHTResponse.type == END sentinel or the stream closes (§4.1's
// DelimitedReader.read_stream contract, applied to DHT queries per
// §4.5).
func readDHTResponseStream(r ggio.ReadCloser, closeConn func() error) (<-chan *pb.DHTResponse, error) {
	msg := &pb.Response{}
	if err := r.ReadMsg(msg); err != nil {
		return nil, err
	}
	if msg.GetType() != pb.Response_OK {
		return nil, newControlFailure("dht", msg.GetError().GetMsg())
	}
	if msg.GetDht().GetType() != pb.DHTResponse_BEGIN {
		return nil, newControlFailure("dht", "expected a stream BEGIN message")
	}

	out := make(chan *pb.DHTResponse)
	go func() {
		defer close(out)
		defer closeConn()

		for {
			frame := &pb.DHTResponse{}
			if err := r.ReadMsg(frame); err != nil {
				if err != io.EOF {
					log.WithError(err).Debug("dht stream read failed")
				}
				return
			}
			if frame.GetType() == pb.DHTResponse_END {
				return
			}
			out <- frame
		}
	}()

	return out, nil
}
