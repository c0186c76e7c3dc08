package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMerchantID will throw if the constructor config has no mid
	ErrMissingMerchantID = errors.New("cmblife: merchant id is required")
	ErrMissingAppID      = errors.New("cmblife: application id is required")
	ErrMissingPrivateKey = errors.New("cmblife: private key is required")
)

// ConfigError reports unusable key material or configuration at
// construction time. Fatal, no recovery.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cmblife: config: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cmblife: config: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// CryptoError reports a signing failure. Not retried.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("cmblife: crypto: %s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error { return e.Err }

// NetworkError reports a connection-level failure (DNS, reset, TLS).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cmblife: network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HttpError reports a non-200 gateway status. The body is discarded.
type HttpError struct {
	StatusCode int
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("cmblife: http status %d", e.StatusCode)
}

// ProtocolError reports a 200 response whose body is not valid JSON.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("cmblife: protocol: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
