package main

import (
	"net"
	"net/http"
	"strings"
)

// writeError writes an error response
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.WriteHeader(statusCode)
	writeJSON(w, APIError{Error: message})
}

// writeErrorWithDetails writes an error response with additional details
func writeErrorWithDetails(w http.ResponseWriter, message, code string, details map[string]interface{}, statusCode int) {
	w.WriteHeader(statusCode)
	writeJSON(w, APIError{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// exportFilename builds the shareable image name for a player's summary
// card. Spaces become underscores so the name survives a download.
func exportFilename(name string) string {
	return "Duchy_HalfSeason_" + strings.ReplaceAll(name, " ", "_") + ".png"
}

// clientIP extracts the caller's address for rate limiting, honouring
// X-Forwarded-For when the service sits behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
