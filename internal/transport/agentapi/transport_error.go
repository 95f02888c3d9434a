package agentapi

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// Виды сетевых сбоев, когда ответа не было вовсе.
const (
	KindTimeout = "timeout"
	KindDNS     = "dns"
	KindRefused = "connection_refused"
	KindTLS     = "tls"
	KindNetwork = "network"
)

// TransportError — запрос не дошёл до агента или ответ не получен.
// Совпадает с domain.ErrTransportUnavailable.
type TransportError struct {
	Op   string
	Kind string
	Err  error
}

func (e *TransportError) Error() string {
	return e.Op + ": agent unavailable (" + describeKind(e.Kind) + "): " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == domain.ErrTransportUnavailable }

func newTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindDNS
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return KindRefused
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "connection refused"):
		return KindRefused
	case strings.Contains(lower, "timeout"), strings.Contains(lower, "deadline exceeded"):
		return KindTimeout
	case strings.Contains(lower, "tls"), strings.Contains(lower, "certificate"), strings.Contains(lower, "handshake"):
		return KindTLS
	}
	return KindNetwork
}

func describeKind(kind string) string {
	switch kind {
	case KindTimeout:
		return "timeout"
	case KindDNS:
		return "host not found"
	case KindRefused:
		return "connection refused"
	case KindTLS:
		return "tls handshake failed"
	default:
		return "network error"
	}
}
