package discover

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"mapping-generator/internal/descriptor"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpClosure writes the raw descriptors of a closure for debugging.
func DumpClosure(w io.Writer, types []*descriptor.TypeDescriptor) {
	for _, d := range types {
		dumpConfig.Fdump(w, d)
	}
}
