// Package notecipher encrypts and decrypts the note body with a password.
//
// Every call to Encrypt draws a fresh random nonce and a fresh random salt,
// derives a new key from the salt and the password with package kdf, and
// seals the plaintext with AES-256-GCM-SIV. The result is a self-contained
// frame:
//
//	offset 0..12   nonce
//	offset 12..32  salt
//	offset 32..end ciphertext + 16-byte tag
//
// Because the salt changes on every call the key changes too, so a key/nonce
// pair is never reused for the same password.
//
// Decrypt reverses the process. Any tag mismatch (wrong password, flipped
// bits, truncated frame) yields ErrDecryptionFailed; a plaintext that is not
// valid UTF-8 yields ErrInvalidEncoding. An empty frame means "no note" to
// callers and is rejected here as malformed.
//
// # Usage
//
//	frame, err := notecipher.Encrypt("hello", password)
//	if err != nil {
//	    // handle error
//	}
//
//	text, err := notecipher.Decrypt(frame, password)
//	if errors.Is(err, notecipher.ErrDecryptionFailed) {
//	    // ask the user for a different password
//	}
package notecipher
