package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/perfume-shop/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	s := notify.NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.Send(context.Background(), "258841234567", "Order shipped"))

	assert.Contains(t, buf.String(), "to=258841234567")
	assert.Contains(t, buf.String(), `text="Order shipped"`)
	assert.NoError(t, s.Close())
}
