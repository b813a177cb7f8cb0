package tool

import (
	"net/http"
	"time"
)

var (
	DefaultTimeout   = 60 * time.Second
	UploadHttpClient *http.Client
)

func init() {
	UploadHttpClient = NewHTTPClient()
}

// NewHTTPClient creates the client used for uploads to the remote host.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: transport,
	}
}

// GetHttpClient returns the client used for uploads.
func GetHttpClient() *http.Client {
	return UploadHttpClient
}
