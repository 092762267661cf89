package p2pclient

import (
	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

// PeerInfo wraps the daemon's PeerInfo message with richer types: a
// peer.ID and parsed multiaddrs rather than raw bytes (§3, §5's
// "list_peers"). This mirrors the PeerInfo type the upstream client
// defines in its dht.go.
type PeerInfo struct {
	ID    peer.ID
	Addrs []ma.Multiaddr
}

func convertPbPeerInfo(pbi *pb.PeerInfo) (*PeerInfo, error) {
	if pbi == nil {
		return nil, newControlFailure("peerinfo", "null peerinfo")
	}

	id, err := peer.IDFromBytes(pbi.GetId())
	if err != nil {
		return nil, wrapControlFailure("decode peer id", err)
	}

	addrs := make([]ma.Multiaddr, 0, len(pbi.GetAddrs()))
	for _, raw := range pbi.GetAddrs() {
		addr, err := ma.NewMultiaddrBytes(raw)
		if err != nil {
			return nil, wrapControlFailure("decode peer addr", err)
		}
		addrs = append(addrs, addr)
	}

	return &PeerInfo{ID: id, Addrs: addrs}, nil
}

// PublicKeyInfo wraps the raw bytes the daemon returns for
// dht_get_public_key (§4.5). Parsing into a crypto.PubKey depends on
// the key-type registry (a collaborator, §6.4), so it's offered as a
// best-effort method rather than performed eagerly.
type PublicKeyInfo struct {
	Raw []byte
}

// Unmarshal parses the raw bytes into a crypto.PubKey.
func (k *PublicKeyInfo) Unmarshal() (crypto.PubKey, error) {
	return crypto.UnmarshalPublicKey(k.Raw)
}

// ConnManagerTag shapes a connmgr_tag_peer request (§4.5).
type ConnManagerTag struct {
	Peer   peer.ID
	Tag    string
	Weight int
}
