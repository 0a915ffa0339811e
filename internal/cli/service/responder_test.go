package service

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubResponder_AnswersFromBank(t *testing.T) {
	s := &StubResponder{Rand: rand.New(rand.NewSource(3))}
	got, err := s.Answer(context.Background(), "what is this hash?")
	require.NoError(t, err)
	assert.Contains(t, sampleAnswers, got)
}

func TestStubResponder_EmptyQueryRejected(t *testing.T) {
	s := &StubResponder{}
	_, err := s.Answer(context.Background(), "   ")
	assert.Error(t, err)
}

func TestRemoteResponder_ReturnsServerAnswer(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"answer": "Stub: you asked 'who?'"})
	}))
	defer srv.Close()

	r := &RemoteResponder{ServerURL: srv.URL}
	got, err := r.Answer(context.Background(), "who?")
	require.NoError(t, err)
	assert.Equal(t, "who?", gotBody["query"])
	assert.Equal(t, "Stub: you asked 'who?'", got)
}

func TestRemoteResponder_ServerErrorIsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	r := &RemoteResponder{ServerURL: srv.URL}
	_, err := r.Answer(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestRemoteResponder_BadJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	r := &RemoteResponder{ServerURL: srv.URL}
	_, err := r.Answer(context.Background(), "q")
	assert.Error(t, err)
}
