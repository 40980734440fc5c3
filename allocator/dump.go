package allocator

import (
	"fmt"
	"io"
	"strings"
)

const dumpSeparator = "==================================================="

// Dump writes the block layout followed by the free space summary.
func (a *Allocator) Dump(w io.Writer) error {

	s := &strings.Builder{}
	fmt.Fprintln(s, dumpSeparator)
	a.blocks.Ascend(func(b *Block) bool {
		fmt.Fprintf(s, "%08X (%4d) - %08X (%4d) (%d bytes); isAligned = %t\n",
			b.address, b.address, b.End(), b.End(), b.size, b.strict)
		return true
	})
	fmt.Fprintf(s, "Available memory: %d bytes; Max Block: %d bytes\n", a.Available(), a.MaxFreeRun())
	fmt.Fprint(s, dumpSeparator+"\n\n")

	_, err := io.WriteString(w, s.String())
	return err
}
