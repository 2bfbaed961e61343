// Package notes exposes the note service over HTTP.
//
// The module mounts two routes on a chi router:
//
//	GET  /notes  returns the stored frame as application/octet-stream
//	POST /notes  replaces the frame; the body is the new frame and the
//	             notes-signature header carries the hex Ed25519 signature
//	             over old frame || new frame
//
// Rejected writes answer 400 write_rejected, oversized frames 413 and store
// failures 500. When a static filesystem is configured, other GET and HEAD
// requests are served from it with index.html as the fallback. Any other
// request gets 400.
//
// Usage:
//
//	svc := notes.NewService(store, verifier)
//	m := notesmod.New(svc, notesmod.WithStatic(os.DirFS("web")), notesmod.WithLogger(log))
//	r.Mount("/", m.Handle())
package notes
