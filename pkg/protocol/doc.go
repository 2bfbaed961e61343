// Package protocol defines the conditional write: how a client binds a new
// note frame to the exact value it believes is stored, and how that binding
// travels to the server.
//
// The signed message is the raw concatenation previous ‖ next with no
// delimiter or length prefix. The server re-reads its own current value and
// verifies the signature over current ‖ next, so a client that signed against
// a stale value is rejected. This gives compare-and-swap semantics with a
// stateless signature check.
//
// The signature is sent hex-encoded in the SignatureHeader request header.
package protocol
