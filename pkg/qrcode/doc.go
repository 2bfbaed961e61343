// Package qrcode renders short strings, such as a hex public key, as QR codes
// either as PNG bytes or as text for a terminal.
//
// It wraps github.com/skip2/go-qrcode.
//
//	png, err := qrcode.Generate(pubKeyHex, 256)
//	text, err := qrcode.Terminal(pubKeyHex, false)
//
// Empty or whitespace-only content fails with ErrEmptyContent; encoder
// failures are joined with ErrGenerate.
package qrcode
