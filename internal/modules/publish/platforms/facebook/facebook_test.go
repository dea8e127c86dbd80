package facebook

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

func testPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
}

func testCreds() domain.Credentials {
	return domain.Credentials{Facebook: &domain.FacebookCredentials{AccessToken: "fb-token", PageID: "page-1"}}
}

func TestPublishPhotoPrefersFeedPostID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/page-1/photos", r.URL.Path)
		var body struct {
			URL     string `json:"url"`
			Caption string `json:"caption"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://example.com/poster.jpg", body.URL)
		assert.Contains(t, body.Caption, "Jazz Night")
		fmt.Fprint(w, `{"id":"photo-1","post_id":"page-1_333"}`)
	}))
	defer srv.Close()

	content := domain.PublishContent{
		Title:       "Jazz Night",
		ContentType: domain.ContentTypeEvent,
		ImageURL:    "https://example.com/poster.jpg",
		Event:       &domain.EventDetails{Date: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC), Location: "City Hall", IsFree: true},
	}
	result := New(srv.URL, srv.Client(), testPolicy()).Publish(context.Background(), content, testCreds(), "Blue Note Cafe")

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "page-1_333", result.PostID)
	assert.Equal(t, "https://www.facebook.com/page-1_333", result.PostURL)
	assert.Equal(t, 0, result.RetryCount)
}

func TestPublishLinkPostsToFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/page-1/feed", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://example.com/sale", r.PostFormValue("link"))
		assert.Contains(t, r.PostFormValue("message"), "Spring Sale")
		fmt.Fprint(w, `{"id":"page-1_444"}`)
	}))
	defer srv.Close()

	content := domain.PublishContent{
		Title:       "Spring Sale",
		ContentType: domain.ContentTypePromotion,
		Link:        "https://example.com/sale",
		Promotion:   &domain.PromotionDetails{Discount: "20%", ValidUntil: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)},
	}
	result := New(srv.URL, srv.Client(), testPolicy()).Publish(context.Background(), content, testCreds(), "")

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "page-1_444", result.PostID)
}

func TestPublishTextOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/page-1/feed", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Empty(t, r.PostFormValue("link"))
		fmt.Fprint(w, `{"id":"page-1_555"}`)
	}))
	defer srv.Close()

	content := domain.PublishContent{
		Title:       "Closed on Monday",
		ContentType: domain.ContentTypePromotion,
		Promotion:   &domain.PromotionDetails{Discount: "0%", ValidUntil: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)},
	}
	result := New(srv.URL, srv.Client(), testPolicy()).Publish(context.Background(), content, testCreds(), "")

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "page-1_555", result.PostID)
}

func TestPublishExpiredTokenNotRetried(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Error validating access token: session has expired","type":"OAuthException","code":190}}`)
	}))
	defer srv.Close()

	content := domain.PublishContent{Title: "x", ContentType: domain.ContentTypePromotion}
	result := New(srv.URL, srv.Client(), testPolicy()).Publish(context.Background(), content, testCreds(), "")

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "reconnect")
	assert.Equal(t, int64(1), calls.Load())
}

func TestPublishMissingCredentials(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	content := domain.PublishContent{Title: "x", ContentType: domain.ContentTypePromotion}
	result := New(srv.URL, srv.Client(), testPolicy()).Publish(context.Background(), content, domain.Credentials{}, "")

	require.False(t, result.Success)
	assert.Equal(t, int64(0), calls.Load())
}

func TestConnectionResolvesPageName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/page-1", r.URL.Path)
		assert.Equal(t, "name", r.URL.Query().Get("fields"))
		fmt.Fprint(w, `{"name":"Blue Note Cafe"}`)
	}))
	defer srv.Close()

	status := New(srv.URL, srv.Client(), testPolicy()).TestConnection(context.Background(), testCreds())

	require.True(t, status.Success, status.Error)
	assert.Equal(t, "connected to Blue Note Cafe", status.Info)
}
