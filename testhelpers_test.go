package p2pclient

import (
	"testing"

	ma "github.com/multiformats/go-multiaddr"
)

// newTestUnixMultiaddr returns a unix multiaddr suitable as a control
// endpoint for tests that only need a well-formed address and never
// actually dial it.
func newTestUnixMultiaddr(t testing.TB) (ma.Multiaddr, error) {
	t.Helper()
	return ma.NewMultiaddr("/unix/" + t.TempDir() + "/p2pd.sock")
}

func requireNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func requireError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func assertEqual(t testing.TB, want, got interface{}, msg string) {
	t.Helper()
	if want != got {
		t.Fatalf("%s: want %v, got %v", msg, want, got)
	}
}
