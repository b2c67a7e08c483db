// Command mapping-generator discovers the types reachable from a set of root
// types, records them in an editable mapping file and generates source code
// from that file.
//
//	mapping-generator discover -s shop.yaml -t Order -m out/mapping.yaml
//	mapping-generator generate -m out/mapping.yaml -g 'csharp.*'
//	mapping-generator -s ./store -t Order -m out/mapping.yaml --generate-mapping
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mapping-generator/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "error:", err)

	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintln(os.Stderr, "hint:", hints)
	}

	if errors.IsConfigError(err) {
		if sub, _, findErr := cmd.Find(os.Args[1:]); findErr == nil {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, sub.UsageString())
		}

		os.Exit(2)
	}

	os.Exit(1)
}
