package printer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/abmachine/memkit/mem"
)

// printAllocText prints one allocation in human-readable text format.
func (p *Printer) printAllocText(id mem.AllocID, a *mem.Allocation) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	if _, err := fmt.Fprintf(p.writer, "alloc %d (%d bytes)\n", id, a.Len()); err != nil {
		return err
	}

	data, truncated := p.clip(a.Bytes())
	line := hex.EncodeToString(data)
	if truncated {
		line += fmt.Sprintf(" ... (%d more bytes)", int(a.Len())-len(data))
	}
	if a.Len() > 0 {
		if _, err := fmt.Fprintf(p.writer, "%s%s\n", indent, line); err != nil {
			return err
		}
	}

	if p.opts.ShowRelocations {
		for _, r := range a.Relocations() {
			if _, err := fmt.Fprintf(p.writer, "%s+0x%x -> alloc %d\n", indent, r.Off, r.Target); err != nil {
				return err
			}
		}
	}
	return nil
}

// clip applies the MaxBytes limit.
func (p *Printer) clip(b []byte) ([]byte, bool) {
	if p.opts.MaxBytes > 0 && len(b) > p.opts.MaxBytes {
		return b[:p.opts.MaxBytes], true
	}
	return b, false
}
