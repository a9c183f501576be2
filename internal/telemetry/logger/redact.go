// Package logger provides structured logging for SolGate.
package logger

import (
	"log/slog"
	"strings"

	"github.com/mr-tron/base58"
)

// Sensitive key patterns that should be redacted. Public keys and
// signatures are fine to log; secret key material is not, so the
// patterns stay narrow enough to let "public_key" fields through.
var sensitiveKeyPatterns = []string{
	"secret",
	"private",
	"seed",
	"mnemonic",
	"password",
	"credential",
	"authorization",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()

		// Key-based detection: redact non-empty values under sensitive keys.
		if IsSensitiveKey(a.Key) {
			if strVal != "" {
				return slog.String(a.Key, redactedValue)
			}
			return a
		}

		// Value-based detection: a secret key logged under a harmless
		// key name still must not leak.
		if IsSensitiveValue(strVal) {
			return slog.String(a.Key, maskValue(strVal))
		}
	}

	// Handle nested groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskValue partially masks a sensitive value, keeping short hints.
// Format: first 4 chars + "..." + last 4 chars
func maskValue(value string) string {
	if len(value) <= 12 {
		return redactedValue
	}
	return value[:4] + "..." + value[len(value)-4:]
}

// RedactString manually redacts a string value.
// Use this when you need to redact a value before logging.
func RedactString(value string) string {
	if IsSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// IsSensitiveValue checks if a value appears to be a base58-encoded
// 64-byte keypair, the wire format of a secret key.
func IsSensitiveValue(value string) bool {
	// 64 bytes encode to 86-88 base58 characters.
	if len(value) < 86 || len(value) > 88 {
		return false
	}
	raw, err := base58.Decode(value)
	if err != nil {
		return false
	}
	return len(raw) == 64
}
