package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	fetchTimeout = 30 * time.Second
	dialTimeout  = 10 * time.Second
	maxRedirects = 10
)

// isBlockedIP reports addresses a URL input must not reach: private,
// loopback, link-local and unspecified.
func isBlockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// publicAddrs resolves host and fails if any of its addresses is blocked.
func publicAddrs(ctx context.Context, host string) ([]net.IPAddr, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no IP addresses found for host: %s", host)
	}
	for _, a := range addrs {
		if isBlockedIP(a.IP) {
			return nil, fmt.Errorf("blocked request to private/loopback IP: %s (%s)", host, a.IP)
		}
	}
	return addrs, nil
}

// newSafeHTTPClient returns the client used for URL inputs. Every dial and
// every redirect target is checked with publicAddrs.
func newSafeHTTPClient() *http.Client {
	dialer := &net.Dialer{Timeout: dialTimeout}
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			addrs, err := publicAddrs(ctx, host)
			if err != nil {
				return nil, err
			}
			return dialer.DialContext(ctx, network, net.JoinHostPort(addrs[0].IP.String(), port))
		},
	}
	return &http.Client{
		Timeout:   fetchTimeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			_, err := publicAddrs(req.Context(), req.URL.Hostname())
			return err
		},
	}
}
