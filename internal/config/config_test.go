package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "vidu-ui", cfg.ServiceName)
	assert.Equal(t, 7860, cfg.ServerPort)
	assert.Equal(t, "https://api.vidu.cn", cfg.ViduBaseURL)
	assert.Equal(t, 300*time.Second, cfg.DefaultTimeout)
	assert.Equal(t, 1800*time.Second, cfg.MaxTimeout)
	assert.Equal(t, 3*time.Second, cfg.CheckInterval)
	assert.Equal(t, "127.0.0.1:7860", cfg.Domain)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_TrimsBaseURL(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "test-key")
	t.Setenv("VIDU_BASE_URL", "https://api.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.ViduBaseURL)
}

func TestLoad_DomainFallsBackToLoopback(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DOMAIN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Domain)
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "99999")

	_, err := Load()
	require.Error(t, err)
}

func TestAddr(t *testing.T) {
	tests := []struct {
		name   string
		share  bool
		expect string
	}{
		{"loopback by default", false, "127.0.0.1:7860"},
		{"all interfaces when shared", true, "0.0.0.0:7860"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServerPort: 7860, SharePublic: tt.share}
			assert.Equal(t, tt.expect, cfg.Addr())
		})
	}
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		expect string
	}{
		{"bare host gets scheme", "example.com:7860", "http://example.com:7860"},
		{"https kept", "https://vidu.example.com", "https://vidu.example.com"},
		{"trailing slash trimmed", "https://vidu.example.com/", "https://vidu.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Domain: tt.domain}
			assert.Equal(t, tt.expect, cfg.PublicBaseURL())
		})
	}
}

func TestClampTimeout(t *testing.T) {
	cfg := &Config{
		DefaultTimeout: 300 * time.Second,
		MaxTimeout:     1800 * time.Second,
	}

	tests := []struct {
		name    string
		seconds int
		expect  time.Duration
	}{
		{"zero uses default", 0, 300 * time.Second},
		{"negative uses default", -5, 300 * time.Second},
		{"in range kept", 60, 60 * time.Second},
		{"above max clamped", 7200, 1800 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, cfg.ClampTimeout(tt.seconds))
		})
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.True(t, (&Config{Environment: "PRODUCTION"}).IsProduction())
	assert.False(t, (&Config{Environment: "development"}).IsProduction())
}
