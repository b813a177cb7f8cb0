// Package transfer sends local files to the remote image host.
package transfer

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

// maxResponseBytes caps how much of the host's reply is read.
const maxResponseBytes = 1 << 20

// Client uploads one file per call; it is safe for concurrent use.
type Client struct {
	endpoint string
	field    string
	linkPath []string
	headers  map[string]string
	http     *http.Client
}

// NewClient builds a client from the preferences.
func NewClient(cfg types.AppConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = tool.GetHttpClient()
	}
	field := cfg.UploadField
	if field == "" {
		field = tool.DefaultUploadField
	}
	return &Client{
		endpoint: cfg.UploadURL,
		field:    field,
		linkPath: cfg.LinkPath,
		headers:  cfg.UploadHeaders,
		http:     httpClient,
	}
}

// Upload posts path as a multipart form and returns the hosted link.
// Every returned error wraps types.ErrUploadFailed.
func (c *Client) Upload(ctx context.Context, path string) (*types.UploadResult, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("%w: no upload endpoint configured", types.ErrUploadFailed)
	}
	info, err := tool.GetFileInfoFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUploadFailed, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", types.ErrUploadFailed, path, err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeMultipart(ctx, mw, c.field, info, file))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("%w: failed to create upload request: %v", types.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		pr.Close()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: upload cancelled: %v", types.ErrUploadFailed, ctx.Err())
		}
		return nil, fmt.Errorf("%w: failed to send upload request: %v", types.ErrUploadFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", types.ErrUploadFailed, err)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: host rejected the file", types.ErrUploadFailed)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: not authorized by host", types.ErrUploadFailed)
	case http.StatusRequestEntityTooLarge:
		return nil, fmt.Errorf("%w: file too large for host (%d bytes)", types.ErrUploadFailed, info.Size)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: rate limited by host", types.ErrUploadFailed)
	default:
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("%w: upload request failed: %s", types.ErrUploadFailed, resp.Status)
		}
	}

	link, err := ExtractLink(body, c.linkPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUploadFailed, err)
	}
	tool.DefaultLogger.Infof("[Upload] %s -> %s", info.Name, link)
	return &types.UploadResult{Link: link, Path: path}, nil
}

func writeMultipart(ctx context.Context, mw *multipart.Writer, field string, info tool.LocalFileInfo, src io.Reader) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(field), escapeQuotes(info.Name)))
	header.Set("Content-Type", info.MimeType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := tool.CopyWithContext(ctx, part, src); err != nil {
		return err
	}
	return mw.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// ExtractLink reads the hosted URL from a response body. JSON bodies are walked along linkPath;
// a bare absolute URL body is accepted as is.
func ExtractLink(body []byte, linkPath []string) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", fmt.Errorf("empty response from host")
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		path := make([]any, 0, len(linkPath))
		for _, p := range linkPath {
			path = append(path, p)
		}
		node, err := sonic.Get([]byte(trimmed), path...)
		if err != nil {
			return "", fmt.Errorf("link not found at %v: %v", linkPath, err)
		}
		link, err := node.String()
		if err != nil {
			return "", fmt.Errorf("link at %v is not a string: %v", linkPath, err)
		}
		if !isAbsoluteURL(link) {
			return "", fmt.Errorf("host returned a non-absolute link %q", link)
		}
		return link, nil
	}

	if isAbsoluteURL(trimmed) {
		return trimmed, nil
	}
	return "", fmt.Errorf("unrecognised response from host")
}

func isAbsoluteURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
