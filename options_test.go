package p2pclient

import "testing"

func TestWithMaxMessageSize_RejectsNonPositive(t *testing.T) {
	control, err := newTestUnixMultiaddr(t)
	requireNoError(t, err)

	_, err = New(control, WithMaxMessageSize(0))
	requireError(t, err)
	if _, ok := err.(*InvalidArgument); !ok {
		t.Fatalf("want *InvalidArgument, got %T", err)
	}
}

func TestWithMaxMessageSize_Applied(t *testing.T) {
	control, err := newTestUnixMultiaddr(t)
	requireNoError(t, err)

	c, err := New(control, WithMaxMessageSize(1024))
	requireNoError(t, err)
	assertEqual(t, 1024, c.maxMsgSize, "configured max message size")
}

func TestNew_DefaultsToMessageSizeMax(t *testing.T) {
	control, err := newTestUnixMultiaddr(t)
	requireNoError(t, err)

	c, err := New(control)
	requireNoError(t, err)
	assertEqual(t, MessageSizeMax, c.maxMsgSize, "default max message size")
}
