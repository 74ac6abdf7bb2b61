package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClientRT(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt, Timeout: 2 * time.Second}
}

func TestGet_ReturnsStatusAndBody(t *testing.T) {
	var gotUA, gotAccept string
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(`{"ok":true}`)), Header: make(http.Header), Request: r}, nil
	}))
	c := &Client{HTTP: rt, UserAgent: "test-agent"}

	code, body, err := c.Get(context.Background(), "http://example.com/x?token=secret")
	require.NoError(t, err)
	require.Equal(t, 200, code)
	require.JSONEq(t, `{"ok":true}`, string(body))
	require.Equal(t, "test-agent", gotUA)
	require.Equal(t, "application/json", gotAccept)
}

func TestGet_SingleAttemptOn500(t *testing.T) {
	var calls int
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: 500, Body: io.NopCloser(strings.NewReader("err")), Header: make(http.Header), Request: r}, nil
	}))
	c := &Client{HTTP: rt}

	code, _, err := c.Get(context.Background(), "http://example.com")
	require.NoError(t, err)
	require.Equal(t, 500, code)
	require.Equal(t, 1, calls)
}

func TestGet_TransportError(t *testing.T) {
	var calls int
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("dial tcp: no route to host")
	}))
	c := &Client{HTTP: rt}

	_, _, err := c.Get(context.Background(), "http://example.com")
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestGet_BadURL(t *testing.T) {
	c := &Client{}
	_, _, err := c.Get(context.Background(), "://bad")
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c := New(3*time.Second, nil)
	require.Equal(t, 3*time.Second, c.HTTP.Timeout)
	require.Equal(t, "stocksinfo/1.0", c.UserAgent)
}
