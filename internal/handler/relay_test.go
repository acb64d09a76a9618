package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	mocks "github.com/SergeyBogomolovv/perfume-shop/internal/handler/mocks"
	"github.com/SergeyBogomolovv/perfume-shop/internal/notify"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationRelay_HandleMessage(t *testing.T) {
	gatewayDown := errors.New("gateway down")
	isMessage := mock.MatchedBy(func(m notify.Message) bool {
		return m.To == "258841234567" && m.Text == "Payment confirmed"
	})

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(d *mocks.MockMessageDeliverer)
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:  "delivered",
			value: `{"to":"258841234567","text":"Payment confirmed","created_at":"2025-03-01T10:00:00Z"}`,
			mockBehavior: func(d *mocks.MockMessageDeliverer) {
				d.EXPECT().Deliver(mock.Anything, isMessage).Return(nil).Once()
			},
		},
		{
			name:  "transient failure retried",
			value: `{"to":"258841234567","text":"Payment confirmed"}`,
			mockBehavior: func(d *mocks.MockMessageDeliverer) {
				d.EXPECT().Deliver(mock.Anything, isMessage).Return(gatewayDown).Twice()
				d.EXPECT().Deliver(mock.Anything, isMessage).Return(nil).Once()
			},
		},
		{
			name:  "gateway keeps failing",
			value: `{"to":"258841234567","text":"Payment confirmed"}`,
			mockBehavior: func(d *mocks.MockMessageDeliverer) {
				d.EXPECT().Deliver(mock.Anything, isMessage).Return(gatewayDown).Times(3)
			},
			wantErr: gatewayDown,
		},
		{
			name:  "rejected is not retried",
			value: `{"to":"258841234567","text":"Payment confirmed"}`,
			mockBehavior: func(d *mocks.MockMessageDeliverer) {
				d.EXPECT().Deliver(mock.Anything, isMessage).
					Return(fmt.Errorf("%w: status 422", notify.ErrRejected)).Once()
			},
			wantErr: notify.ErrRejected,
		},
		{
			name:         "malformed json",
			value:        `{"to":`,
			mockBehavior: func(*mocks.MockMessageDeliverer) {},
			wantAnyErr:   true,
		},
		{
			name:         "missing recipient",
			value:        `{"text":"Payment confirmed"}`,
			mockBehavior: func(*mocks.MockMessageDeliverer) {},
			wantAnyErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := mocks.NewMockMessageDeliverer(t)
			tc.mockBehavior(d)

			h := &NotificationRelay{
				logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate:  validator.New(),
				deliverer: d,
				retry:     utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
			}

			err := h.handleMessage(context.Background(), []byte(tc.value))

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
