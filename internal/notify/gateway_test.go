package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayClient_Deliver(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		wantErr      bool
		wantRejected bool
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "rejected", status: http.StatusUnprocessableEntity, wantErr: true, wantRejected: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: true},
		{name: "gateway down", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got map[string]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := notify.NewGatewayClient(srv.URL, "token", time.Second)
			err := c.Deliver(context.Background(), notify.NewMessage("258841234567", "Payment confirmed"))

			assert.Equal(t, "258841234567", got["to"])
			assert.Equal(t, "Payment confirmed", got["text"])
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantRejected, errors.Is(err, notify.ErrRejected))
		})
	}
}
