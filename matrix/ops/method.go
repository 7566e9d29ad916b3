// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned for a Method outside the defined set or an unparsable name.
var ErrUnknownMethod = errors.New("ops: unknown method")

// Method selects a factorization.
type Method int

// Supported methods. The zero value is MethodLU.
const (
	MethodLU Method = iota
	MethodCholesky
	MethodQR
)

var methodNames = [...]string{
	MethodLU:       "lu",
	MethodCholesky: "cholesky",
	MethodQR:       "qr",
}

// Methods lists every supported method in declaration order.
func Methods() []Method { return []Method{MethodLU, MethodCholesky, MethodQR} }

// String returns the canonical lower-case name ("lu", "cholesky", "qr").
func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

func (m Method) valid() bool { return m >= MethodLU && m <= MethodQR }

// ParseMethod maps a case-insensitive name to a Method. "chol" is accepted for Cholesky.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lu":
		return MethodLU, nil
	case "cholesky", "chol":
		return MethodCholesky, nil
	case "qr":
		return MethodQR, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMethod)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by YAML problem files).
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Set implements pflag.Value so a Method can back a command-line flag.
func (m *Method) Set(s string) error { return m.UnmarshalText([]byte(s)) }

// Type implements pflag.Value.
func (m *Method) Type() string { return "method" }
