package platform

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashport/dashport/internal/models"
)

func newTestClient(ts *httptest.Server) *Client {
	return &Client{
		baseURL:    ts.URL,
		token:      "secret",
		httpClient: ts.Client(),
	}
}

func TestClient_Get_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ts.Close()

	c := newTestClient(ts)
	body, err := c.Get("/api/v1/config/clusterversion")
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok"}`, string(body))
}

func TestClient_Get_AuthHeader(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Api-Token secret", r.Header.Get("Authorization"))
		w.Write([]byte("{}"))
	}))
	defer ts.Close()

	c := newTestClient(ts)
	_, err := c.Get("/test")
	require.NoError(t, err)
}

func TestClient_Get_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401,"message":"Token missing permission"}}`))
	}))
	defer ts.Close()

	c := newTestClient(ts)
	_, err := c.Get("/api/config/v1/dashboards/abc")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, 401, apiErr.Code)
	assert.Equal(t, "Token missing permission", apiErr.Message)
}

func TestClient_Get_ErrorStatus_Unstructured(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer ts.Close()

	c := newTestClient(ts)
	_, err := c.Get("/api/config/v1/dashboards/abc")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClient_Post(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"new-id"}`))
	}))
	defer ts.Close()

	c := newTestClient(ts)
	body, status, err := c.Post("/api/config/v1/dashboards", map[string]string{"name": "Test"})
	require.NoError(t, err)
	assert.Equal(t, 201, status)
	assert.Equal(t, `{"id":"new-id"}`, string(body))
}

func TestClient_Post_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // server gone before the call

	c := &Client{baseURL: ts.URL, token: "secret", httpClient: &http.Client{}}
	_, status, err := c.Post("/api/config/v1/dashboards", nil)
	require.Error(t, err)
	assert.Equal(t, 0, status)
}

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *APIError
	}{
		{"structured", `{"error":{"code":400,"message":"bad tile"}}`, &APIError{Status: 400, Code: 400, Message: "bad tile"}},
		{"not json", `oops`, nil},
		{"no error key", `{"message":"fine"}`, nil},
		{"empty error object", `{"error":{}}`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAPIError(400, []byte(tc.body)))
		})
	}
}

func TestNewClient(t *testing.T) {
	tenant := &models.Tenant{
		URL:      "https://foo.live.example.com",
		Token:    "tok",
		Insecure: true,
	}
	c := NewClient(tenant)
	assert.Equal(t, "https://foo.live.example.com", c.BaseURL())
	assert.Equal(t, "tok", c.token)
}
