// Package kdf derives fixed-size symmetric keys from a salt and a password.
//
// Derivation is deterministic and deliberately slow: the same salt and
// password always produce the same 32-byte key, and brute-forcing a password
// costs both CPU time and memory. Two memory-hard functions are available:
//
//   - scrypt (default) with N=2^17, r=8, p=1
//   - Argon2id with t=3, m=64 MiB, p=4
//
// Parameters are validated once when a Deriver is constructed. A validated
// Deriver cannot fail, so Derive returns the key directly and panics only if
// the underlying primitive rejects parameters it already accepted.
//
// # Usage
//
//	import "github.com/dmitrymomot/sealnote/pkg/kdf"
//
//	key := kdf.Default().Derive(salt, "correct horse battery staple")
//
// Select an algorithm by name, e.g. from configuration:
//
//	d, err := kdf.ByName("argon2id")
//	if err != nil {
//	    // unknown algorithm, treat as fatal misconfiguration
//	}
//
// Every component that derives keys (note cipher, signing authority, the
// provisioning CLI) must use the same Deriver, otherwise public keys and
// ciphertexts will not match across them.
package kdf
