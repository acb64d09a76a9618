package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
}

func TestConfig_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "simulator", conf.Payment.Driver)
	assert.Equal(t, "258", conf.Payment.CountryCode)
	assert.Equal(t, []string{"82", "83", "84", "85", "86", "87"}, conf.Payment.CarrierPrefixes)
	assert.Equal(t, "INS-0", conf.Payment.SuccessCode)
	assert.Equal(t, 15*time.Second, conf.Payment.Timeout)
	assert.Equal(t, "kafka", conf.Notify.Driver)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "http payment driver requires base url and api key",
			env:     map[string]string{"PAYMENT_DRIVER": "http"},
			wantErr: true,
		},
		{
			name: "http payment driver configured",
			env: map[string]string{
				"PAYMENT_DRIVER":   "http",
				"PAYMENT_BASE_URL": "https://api.provider.test:18352",
				"PAYMENT_API_KEY":  "key",
			},
		},
		{
			name:    "unknown notify driver",
			env:     map[string]string{"NOTIFY_DRIVER": "sms"},
			wantErr: true,
		},
		{
			name:    "relay requires gateway url",
			env:     map[string]string{"NOTIFY_RELAY_ENABLED": "true"},
			wantErr: true,
		},
		{
			name:    "malformed carrier prefix",
			env:     map[string]string{"PHONE_CARRIER_PREFIXES": "84,8x"},
			wantErr: true,
		},
		{
			name:    "simulator settles before checkout commits",
			env:     map[string]string{"PAYMENT_SIMULATOR_DELAY": "0s"},
			wantErr: true,
		},
		{
			name:    "unknown env",
			env:     map[string]string{"ENV": "dev"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
