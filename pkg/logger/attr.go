package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// MessageID records the provider message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	return slog.String("message_id", id)
}

// Outcome records a pipeline outcome under the key "outcome".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// ClientIP records the submitting client's IP under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}
