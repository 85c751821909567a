package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robostride/website/pkg/notify"
	"github.com/robostride/website/server/mocks"
)

func postContact(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestContactHandler_Success(t *testing.T) {
	notifier := &mocks.ContactNotifierMock{
		NotifyFunc: func(ctx context.Context, lead notify.Lead) error { return nil },
	}
	srv := testServer(&mocks.NewsFeedMock{}, &mocks.MediaDownloaderMock{}, notifier)

	w := postContact(t, srv, `{"name":"李雷","phone":"13800138000","email":"lei@example.com","message":"需要报价"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["id"])

	calls := notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "李雷", calls[0].Lead.Name)
	assert.Equal(t, "13800138000", calls[0].Lead.Phone)
}

func TestContactHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"13800138000","message":"hi"}`},
		{"missing message", `{"name":"a","phone":"13800138000"}`},
		{"bad phone", `{"name":"a","phone":"12345","message":"hi"}`},
		{"phone with wrong prefix", `{"name":"a","phone":"10800138000","message":"hi"}`},
		{"bad email", `{"name":"a","phone":"13800138000","email":"not-an-email","message":"hi"}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mocks.ContactNotifierMock{
				NotifyFunc: func(ctx context.Context, lead notify.Lead) error { return nil },
			}
			srv := testServer(&mocks.NewsFeedMock{}, &mocks.MediaDownloaderMock{}, notifier)

			w := postContact(t, srv, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, notifier.NotifyCalls(), "invalid leads are not relayed")
		})
	}
}

func TestContactHandler_EmailOptional(t *testing.T) {
	notifier := &mocks.ContactNotifierMock{
		NotifyFunc: func(ctx context.Context, lead notify.Lead) error { return nil },
	}
	srv := testServer(&mocks.NewsFeedMock{}, &mocks.MediaDownloaderMock{}, notifier)

	w := postContact(t, srv, `{"name":"a","phone":"13800138000","message":"hi"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactHandler_RelayFailure(t *testing.T) {
	notifier := &mocks.ContactNotifierMock{
		NotifyFunc: func(ctx context.Context, lead notify.Lead) error { return errors.New("webhook down") },
	}
	srv := testServer(&mocks.NewsFeedMock{}, &mocks.MediaDownloaderMock{}, notifier)

	w := postContact(t, srv, `{"name":"a","phone":"13800138000","message":"hi"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "failed to submit")
	assert.NotContains(t, w.Body.String(), "webhook down", "upstream detail stays server side")
}
