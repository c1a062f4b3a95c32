package transcribe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestAudio(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.ogg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test audio: %v", err)
	}
	return path
}

func TestTranscribeSuccess(t *testing.T) {
	audio := []byte("OggS fake opus payload")

	var gotAuth, gotFormat, gotPrompt, gotRefine, gotFilename string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		gotFormat = r.FormValue("response_format")
		gotPrompt = r.FormValue("prompt")
		gotRefine = r.FormValue("gpt_refine")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("reading file part: %v", err)
		} else {
			gotFilename = header.Filename
			gotFile, _ = io.ReadAll(file)
			file.Close()
		}

		w.Write([]byte("hello world\n"))
	}))
	defer server.Close()

	client, err := New(Options{
		Endpoint:  server.URL,
		Token:     "secret",
		GPTRefine: true,
		Timeout:   5 * time.Second,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	text, err := client.Transcribe(context.Background(), writeTestAudio(t, audio), "some context")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	if text != "hello world" {
		t.Fatalf("expected trimmed transcript, got %q", text)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotFormat != "text" {
		t.Fatalf("expected response_format=text, got %q", gotFormat)
	}
	if gotPrompt != "some context" {
		t.Fatalf("expected prompt to carry the hint, got %q", gotPrompt)
	}
	if gotRefine != "True" {
		t.Fatalf("expected gpt_refine=True, got %q", gotRefine)
	}
	if gotFilename != "input.ogg" {
		t.Fatalf("expected upload filename input.ogg, got %q", gotFilename)
	}
	if !bytes.Equal(gotFile, audio) {
		t.Fatalf("uploaded bytes differ from the artifact on disk")
	}
}

func TestTranscribeEmptyHintAndNoRefine(t *testing.T) {
	var promptSent bool
	var gotPrompt, gotRefine string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		_, promptSent = r.MultipartForm.Value["prompt"]
		gotPrompt = r.FormValue("prompt")
		gotRefine = r.FormValue("gpt_refine")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(Options{Endpoint: server.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.Transcribe(context.Background(), writeTestAudio(t, []byte("x")), ""); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	// The hint field is present even when empty; gpt_refine is omitted when
	// refinement is disabled.
	if !promptSent {
		t.Fatal("expected prompt field to be sent")
	}
	if gotPrompt != "" {
		t.Fatalf("expected empty prompt, got %q", gotPrompt)
	}
	if gotRefine != "" {
		t.Fatalf("expected no gpt_refine field, got %q", gotRefine)
	}
}

func TestTranscribeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model busy"))
	}))
	defer server.Close()

	client, err := New(Options{Endpoint: server.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = client.Transcribe(context.Background(), writeTestAudio(t, []byte("x")), "")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", apiErr.StatusCode)
	}
	if apiErr.Body != "model busy" {
		t.Fatalf("expected body to be preserved, got %q", apiErr.Body)
	}
}

func TestTranscribeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := New(Options{Endpoint: server.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = client.Transcribe(context.Background(), writeTestAudio(t, []byte("x")), "")
	if err == nil {
		t.Fatal("expected error")
	}

	// A transport failure must not masquerade as a server rejection.
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("expected transport error, got APIError: %v", err)
	}
}

func TestTranscribeLanguageField(t *testing.T) {
	var gotLanguage string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		gotLanguage = r.FormValue("language")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := New(Options{Endpoint: server.URL, Language: "en", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.Transcribe(context.Background(), writeTestAudio(t, []byte("x")), ""); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if gotLanguage != "en" {
		t.Fatalf("expected language=en, got %q", gotLanguage)
	}
}

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}
