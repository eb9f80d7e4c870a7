package http

import (
	"net/url"
)

// RapidAPIHeaders returns the key and host headers RapidAPI gateways expect
func RapidAPIHeaders(baseURL, apiKey string) map[string]string {
	headers := map[string]string{"X-RapidAPI-Key": apiKey}
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		headers["X-RapidAPI-Host"] = u.Host
	}
	return headers
}
