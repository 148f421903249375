package convertkit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	path string
	body map[string]any
}

func fakeServer(t *testing.T, status int, reply string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		got.path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &got.body))
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestTagSubscribe(t *testing.T) {
	srv, got := fakeServer(t, http.StatusOK, `{"subscription":{"id":42,"state":"active"}}`)
	c := NewClient("sekret", WithBaseURL(srv.URL+"/"))

	sub, err := c.TagSubscribe(context.Background(), "15471216", Subscriber{
		Email:     "jane@example.com",
		FirstName: "Jane",
		Fields:    map[string]string{"contact_subject": "General Inquiry", "contact_message": "Hi"},
		Tags:      []ID{"99"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"state":"active"}`, string(sub))

	assert.Equal(t, "/v3/tags/15471216/subscribe", got.path)
	assert.Equal(t, "sekret", got.body["api_secret"])
	assert.Equal(t, "jane@example.com", got.body["email"])
	assert.Equal(t, "Jane", got.body["first_name"])
	assert.Equal(t, map[string]any{"contact_subject": "General Inquiry", "contact_message": "Hi"}, got.body["fields"])
	assert.NotContains(t, got.body, "tags")
}

func TestFormSubscribeForwardsTags(t *testing.T) {
	srv, got := fakeServer(t, http.StatusCreated, `{"subscription":{"id":7}}`)
	c := NewClient("sekret", WithBaseURL(srv.URL))

	_, err := c.FormSubscribe(context.Background(), "123", Subscriber{Email: "a@b.co", Tags: []ID{"5", "vip"}})
	require.NoError(t, err)
	assert.Equal(t, "/v3/forms/123/subscribe", got.path)
	assert.Equal(t, "", got.body["first_name"])
	assert.Equal(t, []any{5.0, "vip"}, got.body["tags"])
	assert.NotContains(t, got.body, "fields")
}

func TestUpstreamError(t *testing.T) {
	srv, _ := fakeServer(t, http.StatusUnprocessableEntity, `{"error":"Email address is invalid"}`+"\n")
	c := NewClient("sekret", WithBaseURL(srv.URL))

	_, err := c.TagSubscribe(context.Background(), "1", Subscriber{Email: "nope"})
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusUnprocessableEntity, upErr.StatusCode)
	assert.Equal(t, `{"error":"Email address is invalid"}`, upErr.Body)
	assert.Contains(t, err.Error(), "status 422")
}

func TestMissingSecretAndID(t *testing.T) {
	_, err := NewClient("  ").TagSubscribe(context.Background(), "1", Subscriber{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.False(t, NewClient("").Configured())

	var nilClient *Client
	_, err = nilClient.FormSubscribe(context.Background(), "1", Subscriber{})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewClient("s").FormSubscribe(context.Background(), "", Subscriber{})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestTransportErrorIsNotUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	c := NewClient("s", WithBaseURL(srv.URL), WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

	_, err := c.TagSubscribe(context.Background(), "1", Subscriber{Email: "a@b.co"})
	require.Error(t, err)
	var upErr *UpstreamError
	assert.False(t, errors.As(err, &upErr))
}

func TestIDJSON(t *testing.T) {
	tests := []struct {
		input string
		want  ID
	}{
		{`"123"`, "123"},
		{`123`, "123"},
		{`" 45 "`, "45"},
		{`"vip"`, "vip"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tt.input), &id), tt.input)
		assert.Equal(t, tt.want, id, tt.input)
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))

	out, err := json.Marshal([]ID{"12", "vip", "007"})
	require.NoError(t, err)
	assert.Equal(t, `[12,"vip","007"]`, string(out))
}
