// Package telemetry writes periodic show statistics as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/iburimskiy/fireworks/internal/sim"
)

// Record is one CSV row.
type Record struct {
	Tick      uint64 `csv:"tick"`
	Seconds   uint64 `csv:"seconds"`
	Fireworks int    `csv:"fireworks"`
	Rockets   int    `csv:"rockets"`
	Sparks    int    `csv:"sparks"`
	Launched  uint64 `csv:"launched"`
	Exploded  uint64 `csv:"exploded"`
}

// Writer samples one snapshot per simulated second.
type Writer struct {
	w             io.Writer
	closer        io.Closer
	tps           uint64
	headerWritten bool
}

// NewWriter writes a row to w every tps ticks.
func NewWriter(w io.Writer, tps int) *Writer {
	return &Writer{w: w, tps: uint64(max(tps, 1))}
}

// Create opens path for writing, truncating it.
func Create(path string, tps int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating stats file: %w", err)
	}
	w := NewWriter(f, tps)
	w.closer = f
	return w, nil
}

// Observe writes st if its tick ends a simulated second.
func (w *Writer) Observe(st sim.Stats) error {
	if w == nil || st.Tick%w.tps != 0 {
		return nil
	}

	records := []Record{{
		Tick:      st.Tick,
		Seconds:   st.Tick / w.tps,
		Fireworks: st.Fireworks,
		Rockets:   st.Rockets,
		Sparks:    st.Sparks,
		Launched:  st.Launched,
		Exploded:  st.Exploded,
	}}

	if !w.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, w.w); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.w); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the Writer opened one.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
