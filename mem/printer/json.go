package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/abmachine/memkit/mem"
)

// jsonAlloc represents one allocation in JSON format.
type jsonAlloc struct {
	ID          uint64      `json:"id"`
	Size        uint64      `json:"size"`
	Bytes       string      `json:"bytes,omitempty"`
	Truncated   bool        `json:"truncated,omitempty"`
	Relocations []jsonReloc `json:"relocations,omitempty"`
}

// jsonReloc represents one relocation record in JSON format.
type jsonReloc struct {
	Offset uint64 `json:"offset"`
	Target uint64 `json:"target"`
}

// printAllocJSON prints one allocation as a JSON object.
func (p *Printer) printAllocJSON(id mem.AllocID, a *mem.Allocation) error {
	data, err := json.MarshalIndent(p.toJSON(id, a), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printAllJSON prints every listed allocation as one JSON array.
func (p *Printer) printAllJSON(ids []mem.AllocID) error {
	out := make([]jsonAlloc, 0, len(ids))
	for _, id := range ids {
		a, err := p.mem.Get(id)
		if err != nil {
			return fmt.Errorf("allocation %d: %w", id, err)
		}
		out = append(out, p.toJSON(id, a))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer) toJSON(id mem.AllocID, a *mem.Allocation) jsonAlloc {
	data, truncated := p.clip(a.Bytes())
	out := jsonAlloc{
		ID:        uint64(id),
		Size:      a.Len(),
		Bytes:     hex.EncodeToString(data),
		Truncated: truncated,
	}
	if p.opts.ShowRelocations {
		for _, r := range a.Relocations() {
			out.Relocations = append(out.Relocations, jsonReloc{Offset: r.Off, Target: uint64(r.Target)})
		}
	}
	return out
}
