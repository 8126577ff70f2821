// Package fetch downloads generated assets for archiving.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"syscall"
	"time"

	"film-forge-api/internal/config"
)

var (
	ErrTooLarge       = errors.New("asset exceeds size limit")
	ErrHostNotAllowed = errors.New("asset host is not allowed")
	ErrPrivateAddress = errors.New("asset resolves to a non-public address")
)

// Asset is a downloaded file.
type Asset struct {
	Data        []byte
	ContentType string
	// Ext is the file extension including the dot, taken from the URL path or content type; may be empty.
	Ext string
}

// HTTPFetcher downloads assets over HTTP(S). Connections to loopback, private,
// link-local and unspecified addresses are refused at dial time, redirects included.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
	hosts    []string
	checkIP  func(net.IP) error
}

func NewHTTPFetcher(cfg *config.Config) *HTTPFetcher {
	timeout := cfg.Handlers.AssetFetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	f := &HTTPFetcher{
		maxBytes: cfg.Handlers.MaxAssetBytes,
		checkIP:  publicIP,
	}
	for _, h := range cfg.Handlers.AssetHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			f.hosts = append(f.hosts, h)
		}
	}

	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			ip := net.ParseIP(host)
			if ip == nil {
				return fmt.Errorf("%w: %s", ErrPrivateAddress, host)
			}
			return f.checkIP(ip)
		},
	}
	f.client = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConnsPerHost: 4,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return errors.New("too many redirects")
			}
			return f.checkHost(req.URL)
		},
	}
	return f
}

func publicIP(ip net.IP) error {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast() {
		return fmt.Errorf("%w: %s", ErrPrivateAddress, ip)
	}
	return nil
}

func (f *HTTPFetcher) checkHost(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported asset url scheme %q", u.Scheme)
	}
	if len(f.hosts) == 0 {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range f.hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrHostNotAllowed, host)
}

// Fetch downloads rawURL. Only http and https URLs are accepted.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Asset, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse asset url: %w", err)
	}
	if err := f.checkHost(u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset fetch returned status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	return &Asset{
		Data:        data,
		ContentType: contentType,
		Ext:         extension(u.Path, contentType),
	}, nil
}

func extension(urlPath, contentType string) string {
	if ext := path.Ext(urlPath); ext != "" && len(ext) <= 5 {
		return strings.ToLower(ext)
	}
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mediaType {
	case "audio/mpeg":
		return ".mp3"
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
