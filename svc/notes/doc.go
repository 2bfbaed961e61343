// Package notes implements the server side of the conditional note write.
//
// The server holds one encrypted note frame per key and a single trusted
// Ed25519 public key. It never decrypts anything and never sees a password.
//
// Read returns the stored frame verbatim (empty when nothing is stored).
//
// Write accepts a new frame only when its signature verifies over
// current ‖ new, where current is what the store holds at that moment, not
// what the client claims. The fetch, verify and commit steps run as one unit:
//
//   - stores implementing Swapper commit with an atomic compare-and-swap on
//     the exact bytes that were verified, so a write landing in between makes
//     the swap miss and the request is rejected;
//   - other stores are serialized through a mutex held by the Service.
//
// Every rejection (missing or malformed signature, wrong key, stale previous
// value, lost race) wraps ErrWriteRejected and leaves the store untouched.
// Nothing is retried; a rejected client should re-read and try again.
package notes
