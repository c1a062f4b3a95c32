package transcribe

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/http2"
)

// uploadFilename is the filename the server sees for the audio form part.
const uploadFilename = "input.ogg"

// APIError is a non-2xx response from the transcription server. It is kept
// distinct from transport errors so callers can report the two differently
// instead of copying error text to the clipboard as if it were a transcript.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "…"
	}
	return fmt.Sprintf("transcription server returned HTTP %d: %s", e.StatusCode, body)
}

// Options configures the client.
type Options struct {
	Endpoint  string
	Token     string
	Language  string // optional, omitted when empty
	GPTRefine bool   // ask the server to refine the transcript with an LLM

	Timeout            time.Duration
	EnableHTTP2        bool
	InsecureSkipVerify bool
}

// Client uploads recordings to a whisper-fastapi transcription endpoint.
type Client struct {
	opts       Options
	httpClient *http.Client
}

// New creates a transcription client.
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("transcription endpoint is empty")
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
	}
	if opts.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("configuring http2: %w", err)
		}
	}

	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}, nil
}

// Transcribe uploads the audio artifact together with the hint and returns
// the plain-text transcript. The hint field is always sent, even when empty.
func (c *Client) Transcribe(ctx context.Context, audioPath, hint string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("response_format", "text"); err != nil {
		return "", err
	}
	if err := writer.WriteField("prompt", hint); err != nil {
		return "", err
	}
	if c.opts.GPTRefine {
		if err := writer.WriteField("gpt_refine", "True"); err != nil {
			return "", err
		}
	}
	if c.opts.Language != "" {
		if err := writer.WriteField("language", c.opts.Language); err != nil {
			return "", err
		}
	}

	part, err := writer.CreateFormFile("file", uploadFilename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("reading audio file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transcription server: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return strings.TrimSpace(string(respBody)), nil
}
