package p2pclient

import (
	"fmt"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
)

// isUnix reports whether maddr names a Unix-domain socket endpoint.
func isUnix(maddr ma.Multiaddr) bool {
	for _, p := range maddr.Protocols() {
		if p.Code == ma.P_UNIX {
			return true
		}
	}
	return false
}

// defaultListenAddr synthesizes the listener multiaddr for a control
// endpoint that didn't have one explicitly provided (§6.2): same family
// as the control endpoint, Unix gets a sibling "<path>.listener" path,
// TCP gets 127.0.0.1 with an OS-assigned port.
func defaultListenAddr(control ma.Multiaddr) (ma.Multiaddr, error) {
	if isUnix(control) {
		path, err := control.ValueForProtocol(ma.P_UNIX)
		if err != nil {
			return nil, fmt.Errorf("control multiaddr has no unix path: %w", err)
		}
		// ValueForProtocol percent-decodes; Unix multiaddr paths are
		// otherwise opaque, so just tack on a suffix.
		listenerPath := path + ".listener"
		return ma.NewMultiaddr("/unix/" + strings.TrimPrefix(listenerPath, "/"))
	}
	return ma.NewMultiaddr("/ip4/127.0.0.1/tcp/0")
}

// dialControl opens a fresh connection to maddr, family-agnostic (§4.2).
func dialControl(maddr ma.Multiaddr) (manet.Conn, error) {
	return manet.Dial(maddr)
}

// listen binds a listener to maddr, family-agnostic (§4.3).
func listen(maddr ma.Multiaddr) (manet.Listener, error) {
	return manet.Listen(maddr)
}
