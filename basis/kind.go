// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
)

// Sentinel errors for basis configuration.
var (
	// ErrUnknownKind indicates a basis kind outside the closed set.
	ErrUnknownKind = errors.New("basis: unknown basis kind")

	// ErrBadOrder indicates a non-positive expansion order.
	ErrBadOrder = errors.New("basis: order must be >= 1")

	// ErrBadReference indicates a reference unit outside [0, N).
	ErrBadReference = errors.New("basis: reference unit out of range")

	// ErrOrderExceedsSamples indicates an RBF order larger than the number of
	// samples available as kernel anchors.
	ErrOrderExceedsSamples = errors.New("basis: RBF order exceeds sample count")
)

// Kind enumerates the supported basis families. The zero value is invalid.
type Kind uint8

const (
	kindInvalid Kind = iota

	// Polynomial evaluates x_n^k.
	Polynomial
	// PolynomialDiff evaluates (x_n − x_r)^k.
	PolynomialDiff
	// Fourier evaluates sin(k·x_n), cos(k·x_n).
	Fourier
	// FourierDiff evaluates sin(k·(x_n − x_r)), cos(k·(x_n − x_r)).
	FourierDiff
	// PowerSeries evaluates x_r^k1 · x_n^k2.
	PowerSeries
	// RBF evaluates radial kernels anchored at the first K samples.
	RBF

	kindCount
)

// kindNames holds the canonical spelling of every kind.
var kindNames = [kindCount]string{
	kindInvalid:    "invalid",
	Polynomial:     "polynomial",
	PolynomialDiff: "polynomial_diff",
	Fourier:        "fourier",
	FourierDiff:    "fourier_diff",
	PowerSeries:    "power_series",
	RBF:            "RBF",
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := Polynomial; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool { return k > kindInvalid && k < kindCount }

// String returns the canonical name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Width returns B, the number of basis functions of kind k at the given order.
// Callers must validate k and order first; invalid input yields 0.
func (k Kind) Width(order int) int {
	if !k.Valid() || order < 1 {
		return 0
	}

	return kernels[k].width(order)
}

// ParseKind maps a canonical name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := Polynomial; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return kindInvalid, fmt.Errorf("basis: %q: %w", name, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("basis: %s: %w", k, ErrUnknownKind)
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
