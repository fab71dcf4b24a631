package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// RequestTimeout bounds every game-api call
const RequestTimeout = 30 * time.Second

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Envelope is the provider's uniform response shape. Message carries data on
// success and a human-readable string on failure.
type Envelope struct {
	Success   bool            `json:"success"`
	ErrorCode int             `json:"errorCode"`
	Message   json.RawMessage `json:"message"`
}

// DecodeMessage unmarshals the envelope's message payload into v
func (e *Envelope) DecodeMessage(v any) error {
	if len(e.Message) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Message, v); err != nil {
		return &Error{Kind: ErrorKindParse, Message: "malformed message payload", cause: err}
	}
	return nil
}

// MessageString returns the message payload as a plain string, tolerating
// both quoted strings and raw values
func (e *Envelope) MessageString() string {
	var s string
	if err := json.Unmarshal(e.Message, &s); err == nil {
		return s
	}
	return strings.Trim(string(e.Message), `"`)
}

// Transport issues game-api requests with bearer auth, a fixed timeout, and
// classified errors
type Transport struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewTransport creates a Transport rooted at baseURL (e.g.
// "http://localhost:3001/api/game-api")
func NewTransport(baseURL string, tokens TokenSource) *Transport {
	return &Transport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: RequestTimeout},
		tokens:     tokens,
	}
}

// Send issues a request and decodes the response envelope. A business error
// code in a 2xx response is returned as an ErrorKindBusiness error alongside
// the decoded envelope.
func (t *Transport) Send(ctx context.Context, method, endpoint string, body any) (*Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := t.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrorKindNetwork, Message: "reading response body", cause: err}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &Error{
				Kind:    ErrorKindHTTPStatus,
				Code:    resp.StatusCode,
				Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			}
		}
		return nil, &Error{Kind: ErrorKindParse, Message: "malformed response: unable to parse JSON", cause: err}
	}

	// Business failures ride inside well-formed envelopes regardless of
	// HTTP status. Callers that tolerate specific codes (the idempotent
	// "already exists") branch on IsBusinessCode.
	if env.ErrorCode != 0 || !env.Success {
		message := env.MessageString()
		if message == "" {
			message = fallbackMessage(env.ErrorCode)
		}
		kind := ErrorKindBusiness
		if resp.StatusCode >= 400 {
			kind = ErrorKindHTTPStatus
		}
		return &env, &Error{Kind: kind, Code: env.ErrorCode, Message: message}
	}

	return &env, nil
}

// Get issues a GET request
func (t *Transport) Get(ctx context.Context, endpoint string) (*Envelope, error) {
	return t.Send(ctx, http.MethodGet, endpoint, nil)
}

// Post issues a POST request with a JSON body
func (t *Transport) Post(ctx context.Context, endpoint string, body any) (*Envelope, error) {
	return t.Send(ctx, http.MethodPost, endpoint, body)
}

func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: ErrorKindTimeout, Message: "request timed out after 30s", cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: ErrorKindTimeout, Message: "request timed out after 30s", cause: err}
	}
	return &Error{Kind: ErrorKindNetwork, Message: "network connection failed", cause: err}
}
