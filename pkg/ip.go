package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP returns the client IP of the request. The X-Real-Ip and
// X-Forwarded-For headers are only honoured with trustProxyHeaders set, i.e.
// when a reverse proxy in front of the service overwrites them; otherwise
// clients could pick any address they like.
func ReadUserIP(r *http.Request, trustProxyHeaders bool) (string, error) {
	var ipAddr string
	if trustProxyHeaders {
		ipAddr = r.Header.Get("X-Real-Ip")
		if ipAddr == "" {
			// X-Forwarded-For: client, proxy1, proxy2
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				ipAddr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	ip := net.ParseIP(ipAddr)
	if ip == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return ip.String(), nil
}
