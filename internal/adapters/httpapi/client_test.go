package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nivo.ch/panelctl/internal/adapters/httpapi"
	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpapi.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return httpapi.NewClient(&domain.ClientConfig{
		Endpoint: srv.URL,
		Login:    "alice",
		Password: "hunter2",
	}, logger)
}

func TestClient_Query_EncodesCommandAndCredentials(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte("error=0\ncolumns=name|owner\nitem0=example.com|alice\n"))
	})

	resp, err := client.Query(context.Background(), "get_domains", map[string]string{"filter": "active"})
	require.NoError(t, err)

	assert.Equal(t, []string{"get_domains"}, gotQuery["action"])
	assert.Equal(t, []string{"alice"}, gotQuery["login"])
	assert.Equal(t, []string{"hunter2"}, gotQuery["password"])
	assert.Equal(t, []string{"active"}, gotQuery["filter"])

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "example.com", resp.Rows[0]["name"])
}

func TestClient_Apply_PostsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "add_mailaccount", r.PostForm.Get("action"))
		assert.Equal(t, "info", r.PostForm.Get("local"))
		_, _ = w.Write([]byte("error=0\n"))
	})

	_, err := client.Apply(context.Background(), "add_mailaccount", map[string]string{"local": "info"})
	require.NoError(t, err)
}

func TestClient_ApplicationErrorBecomesRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("error=7\ndetails=quota exceeded\n"))
	})

	resp, err := client.Apply(context.Background(), "add_domain", nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrCommandRejected)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_HTTPErrorIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Query(context.Background(), "get_domains", nil)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	assert.NotErrorIs(t, err, domain.ErrCommandRejected)
}

func TestClient_UnreachableEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	client := httpapi.NewClient(&domain.ClientConfig{
		Endpoint: "http://127.0.0.1:1", // nothing listens here
		Login:    "alice",
		Password: "hunter2",
	}, logger)

	_, err := client.Query(context.Background(), "get_domains", nil)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_MissingErrorFieldIsMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("details=looks fine\n"))
	})

	_, err := client.Query(context.Background(), "get_domains", nil)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}
