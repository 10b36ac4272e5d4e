package notify_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbodj/frigo/internal/config"
	"github.com/mbodj/frigo/pkg/clients/notify"
)

func TestSendTextPostsBody(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := notify.NewClient(config.NotifyConfig{WebhookURL: srv.URL})
	err := client.SendText(context.Background(), "Frigo: 2 articles périmés")
	require.NoError(t, err)
	assert.Equal(t, "Frigo: 2 articles périmés", received)
}

func TestSendTextReportsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := notify.NewClient(config.NotifyConfig{WebhookURL: srv.URL})
	err := client.SendText(context.Background(), "message")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
