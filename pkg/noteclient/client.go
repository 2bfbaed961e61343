package noteclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/dmitrymomot/sealnote/pkg/kdf"
	"github.com/dmitrymomot/sealnote/pkg/notecipher"
	"github.com/dmitrymomot/sealnote/pkg/protocol"
	"github.com/dmitrymomot/sealnote/pkg/requestid"
	"github.com/dmitrymomot/sealnote/pkg/signing"
)

const (
	notesPath      = "/notes"
	defaultTimeout = 30 * time.Second
	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 4 << 10
)

// Client talks to a notes server. It remembers the last frame it fetched or
// wrote and signs the next write against it. Failed writes leave that state
// unchanged, so a rejected Save can be retried after a Fetch.
//
// A Client is safe for concurrent use; requests are serialized.
type Client struct {
	baseURL    string
	context    string
	httpClient *http.Client
	cipher     *notecipher.Cipher
	authority  *signing.Authority

	mu       sync.Mutex
	previous []byte
}

type Option func(*Client)

// WithHTTPClient replaces the pooled default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithSigningContext overrides the signing context, which defaults to the
// origin of the server URL.
func WithSigningContext(ctx string) Option {
	return func(c *Client) {
		if ctx != "" {
			c.context = ctx
		}
	}
}

// WithDeriver sets the key derivation used for encryption and signing.
// It must match the one the server's public key was derived with.
func WithDeriver(d kdf.Deriver) Option {
	return func(c *Client) {
		if d != nil {
			c.cipher = notecipher.New(notecipher.WithDeriver(d))
			c.authority = signing.NewAuthority(d)
		}
	}
}

// New returns a client for the server at baseURL, e.g. "https://notes.example.com".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = defaultTimeout
	hc.Transport = requestid.Transport(hc.Transport)

	c := &Client{
		baseURL:    strings.TrimRight(u.Scheme+"://"+u.Host+u.Path, "/"),
		context:    Origin(u),
		httpClient: hc,
		cipher:     notecipher.New(),
		authority:  signing.NewAuthority(kdf.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Origin returns scheme://host[:port] of u, the default signing context.
// It matches a browser origin: lowercase, with the scheme's default port
// dropped.
func Origin(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if defaultPorts[scheme] == port {
		port = ""
	}
	switch {
	case port != "":
		host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}
	return scheme + "://" + host
}

var defaultPorts = map[string]string{"http": "80", "https": "443"}

// SigningContext returns the context keys are derived for.
func (c *Client) SigningContext() string {
	return c.context
}

// PublicKey returns the hex public key for password. Configure the server
// with it to accept writes from this client.
func (c *Client) PublicKey(password string) string {
	return c.authority.DeriveKeypair(c.context, password).PublicKeyHex()
}

// Fetch downloads the current frame and remembers it as the base for the
// next Save. An empty frame means no note is stored.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.previous = frame
	return bytes.Clone(frame), nil
}

// Load fetches and decrypts the note. No stored note yields "".
// A wrong password fails with notecipher.ErrDecryptionFailed.
func (c *Client) Load(ctx context.Context, password string) (string, error) {
	frame, err := c.Fetch(ctx)
	if err != nil {
		return "", err
	}
	if len(frame) == 0 {
		return "", nil
	}
	return c.cipher.Decrypt(frame, password)
}

// Save encrypts text and replaces the stored note, signing against the last
// fetched or saved frame. A refused write returns *WriteError.
func (c *Client) Save(ctx context.Context, text, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	update, err := protocol.Prepare(c.cipher, c.authority, c.previous, text, c.context, password)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+notesPath, bytes.NewReader(update.Frame))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(protocol.SignatureHeader, update.SignatureHex())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(resp)
		if resp.StatusCode == http.StatusBadRequest {
			return &WriteError{
				Err:       statusErr,
				PublicKey: c.authority.DeriveKeypair(c.context, password).PublicKeyHex(),
			}
		}
		return statusErr
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.previous = update.Frame
	return nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+notesPath, nil)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp)
	}

	frame, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return frame, nil
}

func newStatusError(resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
		RequestID:  resp.Header.Get(requestid.Header),
	}
}
