package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/shared/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphStub emulates the media container endpoints. statuses is consumed one
// entry per status poll; the last entry repeats once exhausted.
type graphStub struct {
	statuses []string

	createCalls  atomic.Int64
	statusCalls  atomic.Int64
	publishCalls atomic.Int64
}

func (g *graphStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/acct-1/media":
		g.createCalls.Add(1)
		fmt.Fprint(w, `{"id":"container-9"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/acct-1/media_publish":
		g.publishCalls.Add(1)
		var body struct {
			CreationID string `json:"creation_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.CreationID != "container-9" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"unknown creation id","type":"GraphMethodException","code":100}}`)
			return
		}
		fmt.Fprint(w, `{"id":"post-55"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/container-9":
		n := g.statusCalls.Add(1)
		idx := min(int(n)-1, len(g.statuses)-1)
		fmt.Fprintf(w, `{"status_code":%q}`, g.statuses[idx])
	case r.Method == http.MethodGet && r.URL.Path == "/post-55":
		fmt.Fprint(w, `{"permalink":"https://www.instagram.com/p/xyz/"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/acct-1":
		fmt.Fprint(w, `{"username":"bluenote"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"message":"unknown path","type":"GraphMethodException","code":803}}`)
	}
}

func newTestPublisher(srv *httptest.Server) *Publisher {
	p := New(srv.URL, srv.Client(), retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond})
	p.pollInterval = time.Millisecond
	return p
}

func testCreds() domain.Credentials {
	return domain.Credentials{Instagram: &domain.InstagramCredentials{AccessToken: "ig-token", BusinessAccountID: "acct-1"}}
}

func imageContent() domain.PublishContent {
	return domain.PublishContent{
		Title:       "Jazz Night",
		ContentType: domain.ContentTypeEvent,
		ImageURL:    "https://example.com/poster.jpg",
		Event:       &domain.EventDetails{Date: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC), Location: "City Hall", IsFree: true},
	}
}

func TestPublishWaitsForContainer(t *testing.T) {
	stub := &graphStub{statuses: []string{"IN_PROGRESS", "IN_PROGRESS", "FINISHED"}}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	result := newTestPublisher(srv).Publish(context.Background(), imageContent(), testCreds(), "Blue Note Cafe")

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "post-55", result.PostID)
	assert.Equal(t, "https://www.instagram.com/p/xyz/", result.PostURL)
	assert.Equal(t, 0, result.RetryCount)
	assert.Equal(t, int64(3), stub.statusCalls.Load())
	assert.Equal(t, int64(1), stub.publishCalls.Load())
}

func TestPublishContainerTimeout(t *testing.T) {
	stub := &graphStub{statuses: []string{"IN_PROGRESS"}}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	result := newTestPublisher(srv).Publish(context.Background(), imageContent(), testCreds(), "")

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "container processing timeout")
	// The poll ceiling bounds the status requests and finalize never runs.
	assert.Equal(t, int64(defaultMaxPolls), stub.statusCalls.Load())
	assert.Equal(t, int64(0), stub.publishCalls.Load())
}

func TestPublishContainerError(t *testing.T) {
	stub := &graphStub{statuses: []string{"IN_PROGRESS", "ERROR"}}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	result := newTestPublisher(srv).Publish(context.Background(), imageContent(), testCreds(), "")

	require.False(t, result.Success)
	assert.Equal(t, int64(2), stub.statusCalls.Load())
	assert.Equal(t, int64(0), stub.publishCalls.Load())
}

func TestPublishRequiresImage(t *testing.T) {
	stub := &graphStub{}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	content := imageContent()
	content.ImageURL = ""
	result := newTestPublisher(srv).Publish(context.Background(), content, testCreds(), "")

	require.False(t, result.Success)
	assert.Equal(t, "content requires an image", result.Error)
	assert.Equal(t, int64(0), stub.createCalls.Load())
}

func TestPublishMissingCredentials(t *testing.T) {
	stub := &graphStub{}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	result := newTestPublisher(srv).Publish(context.Background(), imageContent(), domain.Credentials{}, "")

	require.False(t, result.Success)
	assert.Equal(t, int64(0), stub.createCalls.Load())
}

func TestConnectionResolvesUsername(t *testing.T) {
	stub := &graphStub{}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	status := newTestPublisher(srv).TestConnection(context.Background(), testCreds())

	require.True(t, status.Success, status.Error)
	assert.Equal(t, "connected to @bluenote", status.Info)
}
