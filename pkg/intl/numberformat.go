package intl

import (
	"lumen/runtime-go/pkg/heap"
)

// Style enumerates supported formatting styles.
type Style string

const (
	StyleDecimal Style = "decimal"
	StylePercent Style = "percent"
)

// NumberFormat is a resolved formatting configuration. It is immutable once
// constructed and may be shared between any number of holders; lifetime is
// governed by reachability tracing, not ownership.
type NumberFormat struct {
	Locale            string
	Style             Style
	MinFractionDigits int
	MaxFractionDigits int
	UseGrouping       bool
}

// NewNumberFormat returns a decimal-style configuration with the ECMA-402
// default digit bounds.
func NewNumberFormat(locale string) *NumberFormat {
	return &NumberFormat{
		Locale:            locale,
		Style:             StyleDecimal,
		MinFractionDigits: 0,
		MaxFractionDigits: 3,
		UseGrouping:       true,
	}
}

// Trace implements heap.Cell. A configuration owns no further cells.
func (nf *NumberFormat) Trace(visit func(heap.Cell)) {}
