package qrcode

import (
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrGenerate     = errors.New("failed to generate QR code")
)

// defaultSize is the PNG size in pixels when none is given.
const defaultSize = 256

// Generate encodes content as a PNG QR code of size x size pixels.
func Generate(content string, size int) ([]byte, error) {
	q, err := encode(content)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// Terminal renders content as a QR code made of half-block characters, two
// modules per line, for printing to a terminal. Set inverse on light-on-dark
// terminals if the code does not scan.
func Terminal(content string, inverse bool) (string, error) {
	q, err := encode(content)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(inverse), nil
}

func encode(content string) (*skipqrcode.QRCode, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, skipqrcode.Medium)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return q, nil
}
