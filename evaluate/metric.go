// SPDX-License-Identifier: MIT

package evaluate

import "strconv"

// Metric is an optional real value. The zero Metric is undefined.
type Metric struct {
	value   float64
	defined bool
}

// Defined returns a Metric holding v.
func Defined(v float64) Metric { return Metric{value: v, defined: true} }

// Undefined returns the undefined Metric.
func Undefined() Metric { return Metric{} }

// Value returns the value and whether it is defined.
func (m Metric) Value() (float64, bool) { return m.value, m.defined }

// Defined reports whether m carries a value.
func (m Metric) Defined() bool { return m.defined }

// String formats the value with four decimals, or "undefined".
func (m Metric) String() string {
	if !m.defined {
		return "undefined"
	}

	return strconv.FormatFloat(m.value, 'f', 4, 64)
}

// Mean averages the defined metrics and ignores the rest. It returns an
// undefined Metric when none is defined.
func Mean(ms []Metric) Metric {
	var sum float64
	var n int
	for _, m := range ms {
		if m.defined {
			sum += m.value
			n++
		}
	}
	if n == 0 {
		return Metric{}
	}

	return Defined(sum / float64(n))
}
