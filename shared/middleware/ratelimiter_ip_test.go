package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIP(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{name: "ipv4 with port", remoteAddr: "192.168.1.100:54321", expected: "192.168.1.100"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:8080", expected: "2001:db8::1"},
		{name: "no port", remoteAddr: "192.168.1.1", expected: "192.168.1.1"},
		{
			name:       "forwarding headers ignored",
			remoteAddr: "203.0.113.50:12345",
			headers:    map[string]string{"X-Real-IP": "10.0.0.1", "X-Forwarded-For": "10.0.0.2, 10.0.0.3"},
			expected:   "203.0.113.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/v1/contact", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			ip, err := GetIP(req)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ip)
		})
	}
}

func TestGetIP_InvalidIP(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/contact", nil)
	req.RemoteAddr = "not-an-ip:1234"

	_, err := GetIP(req)
	require.Error(t, err)
	assert.Equal(t, "invalid IP address: not-an-ip", err.Error())
}
