// Package noteclient is the client side of the notes protocol.
//
// The client encrypts note text locally, signs old frame || new frame with a
// key derived from the password and the signing context, and posts the
// result. The server only ever sees ciphertext and signatures.
//
// The signing context defaults to the server origin (scheme://host[:port]).
// The server's public key must be derived for the same context and password,
// see Client.PublicKey.
//
//	c, err := noteclient.New("https://notes.example.com")
//	text, err := c.Load(ctx, password)
//	err = c.Save(ctx, text+"\nmore", password)
//
// A rejected write returns *WriteError carrying the public key the client
// signed with. Writes are never retried; call Load and Save again to rebase
// onto the latest note.
package noteclient
