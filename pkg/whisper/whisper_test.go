package whisper_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-todo-assistant/pkg/whisper"
)

func TestTranscribe(t *testing.T) {
	var gotModel, gotLanguage, gotFilename string
	var gotAudio []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotAudio, _ = io.ReadAll(file)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"text": "buy milk tomorrow"}`))
	}))
	defer ts.Close()

	client, err := whisper.New(whisper.Config{
		APIKey:   "test-key",
		BaseURL:  ts.URL,
		Language: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.Transcribe(context.Background(), &whisper.TranscribeRequest{
		Audio:    []byte("fake-wav-bytes"),
		Filename: "command.wav",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text != "buy milk tomorrow" {
		t.Errorf("text = %q", resp.Text)
	}
	if gotModel != whisper.DefaultModel {
		t.Errorf("model = %q", gotModel)
	}
	if gotLanguage != "en" {
		t.Errorf("language = %q", gotLanguage)
	}
	if gotFilename != "command.wav" {
		t.Errorf("filename = %q", gotFilename)
	}
	if string(gotAudio) != "fake-wav-bytes" {
		t.Errorf("audio not forwarded")
	}
}

func TestTranscribeEmptyAudio(t *testing.T) {
	client, err := whisper.New(whisper.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Transcribe(context.Background(), &whisper.TranscribeRequest{}); err == nil {
		t.Fatalf("expected error for empty audio")
	}
}

func TestTranscribeServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad audio"}}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	client, err := whisper.New(whisper.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Transcribe(context.Background(), &whisper.TranscribeRequest{
		Audio: []byte("x"),
	}); err == nil {
		t.Fatalf("expected error from 400 response")
	}
}
