package main

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExportFilename tests summary card filename generation
func TestExportFilename(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"James Dudley", "Duchy_HalfSeason_James_Dudley.png"},
		{"Stephen Mawdsley", "Duchy_HalfSeason_Stephen_Mawdsley.png"},
		{"Cher", "Duchy_HalfSeason_Cher.png"},
		{"Jean Paul van Damme", "Duchy_HalfSeason_Jean_Paul_van_Damme.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exportFilename(tt.name))
		})
	}
}

// TestClientIP tests address extraction for rate limiting
func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{"plain remote addr", "192.168.1.10:54321", "", "192.168.1.10"},
		{"remote addr without port", "192.168.1.10", "", "192.168.1.10"},
		{"single forwarded hop", "10.0.0.1:80", "203.0.113.7", "203.0.113.7"},
		{"forwarded chain keeps first", "10.0.0.1:80", "203.0.113.7, 10.0.0.2, 10.0.0.3", "203.0.113.7"},
		{"forwarded with spaces", "10.0.0.1:80", "  203.0.113.7  ", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/health", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.expected, clientIP(r))
		})
	}
}
