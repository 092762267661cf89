// Package p2pclient is a client for the libp2p daemon's control protocol.
//
// The daemon (p2pd) is a standalone process that speaks libp2p on behalf
// of an application and exposes a local control socket — a Unix domain
// socket or a TCP loopback listener — over which this package dials,
// issues varint-length-delimited protobuf requests, and receives typed
// responses. Applications that want to identify themselves, dial peers,
// open and accept protocol streams, query the DHT, tag connections, or
// publish and subscribe to pub/sub topics do so through a *Client built
// by New, without linking a full libp2p host into their own process.
//
// A Client owns exactly one control endpoint (one daemon) and, once
// Listen has been called, one listener socket that the daemon dials
// back into for inbound streams and that backs every registered
// protocol handler. Close tears both down.
package p2pclient
