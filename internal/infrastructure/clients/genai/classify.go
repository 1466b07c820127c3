// Package genai holds pieces shared by the generative model clients: failure
// classification, request metrics, rate limiting and response cleanup.
package genai

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
)

// ClassifyStatus maps an upstream HTTP status to a failure kind. Server-side
// faults and gateway errors are transient; everything else is permanent.
func ClassifyStatus(code int) providers.FailureKind {
	switch code {
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return providers.FailureTransient
	}
	return providers.FailurePermanent
}

// ClassifyProviderStatus maps a canonical RPC status name, as carried in
// Google API error bodies, to a failure kind.
func ClassifyProviderStatus(status string) providers.FailureKind {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "INTERNAL", "UNAVAILABLE", "DEADLINE_EXCEEDED":
		return providers.FailureTransient
	}
	return providers.FailurePermanent
}

// ClassifyTransport maps a transport-level error to a failure kind. Timeouts,
// DNS failures and reset connections are transient. Caller cancellation is not.
func ClassifyTransport(err error) providers.FailureKind {
	if err == nil {
		return providers.FailurePermanent
	}
	if errors.Is(err, context.Canceled) {
		return providers.FailurePermanent
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return providers.FailureTransient
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return providers.FailureTransient
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrUnexpectedEOF) {
		return providers.FailureTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return providers.FailureTransient
	}
	return providers.FailurePermanent
}

// StripCodeFence removes a surrounding markdown code fence from model output
func StripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
