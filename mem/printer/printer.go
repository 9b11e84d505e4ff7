// Package printer renders Memory snapshots for debugging and tooling:
// per-allocation hex dumps with relocation annotations, as text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/abmachine/memkit/mem"
)

const (
	DefaultIndentSize = 2
	DefaultMaxBytes   = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format
	// only). Default: 2
	IndentSize int

	// MaxBytes limits how many bytes of each allocation are shown.
	// Longer buffers are truncated. Set to 0 for no limit.
	// Default: 32
	MaxBytes int

	// ShowRelocations includes the relocation side-table in the output.
	// Default: true
	ShowRelocations bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		IndentSize:      DefaultIndentSize,
		MaxBytes:        DefaultMaxBytes,
		ShowRelocations: true,
	}
}

// Printer handles formatted output of simulated allocations.
type Printer struct {
	mem    *mem.Memory
	writer io.Writer
	opts   Options
}

// New creates a new Printer reading from m and writing to w.
//
// Example:
//
//	p := printer.New(m, os.Stdout, printer.DefaultOptions())
//	p.PrintAll()
func New(m *mem.Memory, w io.Writer, opts Options) *Printer {
	return &Printer{
		mem:    m,
		writer: w,
		opts:   opts,
	}
}

// PrintAlloc prints a single allocation by id.
func (p *Printer) PrintAlloc(id mem.AllocID) error {
	a, err := p.mem.Get(id)
	if err != nil {
		return fmt.Errorf("allocation %d: %w", id, err)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printAllocJSON(id, a)
	default:
		return p.printAllocText(id, a)
	}
}

// PrintAll prints every live allocation in ascending id order.
func (p *Printer) PrintAll() error {
	ids := p.mem.AllocIDs()

	if p.opts.Format == FormatJSON {
		return p.printAllJSON(ids)
	}
	for _, id := range ids {
		if err := p.PrintAlloc(id); err != nil {
			return err
		}
	}
	return nil
}
