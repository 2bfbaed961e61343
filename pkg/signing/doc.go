// Package signing derives a deterministic Ed25519 keypair from a signing
// context and a password, and verifies signatures made with it.
//
// The context is a stable, deployment-wide string (normally the origin the
// notes server is reachable at). It is used as the key derivation salt, so the
// same context and password always regenerate the identical keypair and no
// secret state is ever persisted. The context must never be reused as an
// encryption salt; package notecipher draws a fresh random salt per call.
//
// Client side:
//
//	auth := signing.NewAuthority(kdf.Default())
//	sig := auth.Sign(message, "https://notes.example.com", password)
//	pub := auth.PublicKey("https://notes.example.com", password)
//
// Server side, with the single trusted key from configuration:
//
//	v, err := signing.ParseVerifier(os.Getenv("NOTES_PUBLIC_KEY"))
//	if err != nil {
//	    // fatal misconfiguration
//	}
//	if err := v.Verify(message, sig); err != nil {
//	    // reject
//	}
//
// Verification is strict: besides the standard checks it rejects public keys
// and signature R components of small order.
package signing
