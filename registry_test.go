package p2pclient

import (
	"net"
	"testing"

	pb "github.com/libp2p/go-libp2p-daemon-client/pb"
)

func TestRegistry_SetAndGet(t *testing.T) {
	r := newRegistry()
	if _, ok := r.get("/echo/1.0"); ok {
		t.Fatal("empty registry should not find a handler")
	}

	r.set("/echo/1.0", func(info *pb.StreamInfo, stream net.Conn) {})

	h, ok := r.get("/echo/1.0")
	if !ok || h == nil {
		t.Fatal("registered handler should be found")
	}
}

func TestRegistry_OverwritesExistingProto(t *testing.T) {
	r := newRegistry()
	var lastCalled string

	r.set("/p", func(info *pb.StreamInfo, stream net.Conn) { lastCalled = "first" })
	r.set("/p", func(info *pb.StreamInfo, stream net.Conn) { lastCalled = "second" })

	h, ok := r.get("/p")
	if !ok {
		t.Fatal("expected a handler for /p")
	}
	h(&pb.StreamInfo{}, nil)
	if lastCalled != "second" {
		t.Fatalf("want the second registration to win, got %q", lastCalled)
	}
}

func TestRegistry_UnknownProtoMisses(t *testing.T) {
	r := newRegistry()
	r.set("/a", func(info *pb.StreamInfo, stream net.Conn) {})

	if _, ok := r.get("/b"); ok {
		t.Fatal("unregistered protocol should not be found")
	}
}
