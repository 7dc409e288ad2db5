// Package tenant derives the active shop label from a request hostname.
package tenant

import (
	"net"
	"strings"
)

// Resolve returns the first dot-delimited label of the hostname, with any
// port stripped. "beautyhub.example.com:3000" resolves to "beautyhub".
// Whether the label names a registered shop is decided by the data layer,
// not here.
func Resolve(hostname string) string {
	if host, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = host
	}
	label, _, _ := strings.Cut(hostname, ".")
	return label
}
