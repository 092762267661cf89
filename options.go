package p2pclient

import ma "github.com/multiformats/go-multiaddr"

// ClientOption configures a Client at construction time.
type ClientOption func(*Client) error

// WithListenAddr overrides the auto-synthesized listener multiaddr
// (§6.2). By default the listener address matches the control
// endpoint's family: a sibling path for Unix, 127.0.0.1:0 for TCP.
func WithListenAddr(maddr ma.Multiaddr) ClientOption {
	return func(c *Client) error {
		c.listenAddr = maddr
		return nil
	}
}

// WithListenAddrString is WithListenAddr for a textual multiaddr.
func WithListenAddrString(s string) ClientOption {
	return func(c *Client) error {
		maddr, err := ma.NewMultiaddr(s)
		if err != nil {
			return newInvalidArgument("invalid listen multiaddr %q: %s", s, err)
		}
		c.listenAddr = maddr
		return nil
	}
}

// WithMaxMessageSize overrides the default frame-size cap (§4.1, §9:
// "the 64 MiB limit here is an implementer recommendation, not a wire
// guarantee") applied to every varint-length-delimited frame this
// client reads, on the control channel, the listener, and subscription
// readers alike.
func WithMaxMessageSize(n int) ClientOption {
	return func(c *Client) error {
		if n <= 0 {
			return newInvalidArgument("max message size must be positive, got %d", n)
		}
		c.maxMsgSize = n
		return nil
	}
}
