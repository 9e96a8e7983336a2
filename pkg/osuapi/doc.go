// Package osuapi is a client for the osu! web API (v1).
//
// A Client is built from an API key and a Connector. SyncConnector blocks the
// calling goroutine for the duration of each request; ConcurrentConnector runs
// each request on its own goroutine and hands back a channel, which the Async
// methods of Client wrap in a Future.
//
// Responses are decoded eagerly into plain structs. Numeric strings become
// numbers, "0"/"1" flags become bools and nullable fields become nil pointers,
// so a record never holds a value that still needs resolving.
package osuapi
