package notecipher

import "errors"

var (
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrMalformedFrame   = errors.New("malformed note frame")
	ErrInvalidEncoding  = errors.New("decrypted note is not valid UTF-8 text")
)
