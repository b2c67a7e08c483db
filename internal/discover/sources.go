package discover

import (
	"context"

	"go.uber.org/zap"

	"mapping-generator/internal/analyze"
	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/logger"
)

// LoadSources builds the descriptor set named by specs. Entries with a
// descriptor file extension are read as files; everything else is a Go
// package pattern, loaded in one go. Sources keep the order of specs, with
// Go packages after the files.
func LoadSources(ctx context.Context, specs []string, log *zap.SugaredLogger) (*descriptor.Set, error) {
	log = logger.OrNop(log)
	set := descriptor.NewSet()

	var patterns []string

	for _, spec := range specs {
		if !descriptor.IsDescriptorFile(spec) {
			patterns = append(patterns, spec)
			continue
		}

		src, err := descriptor.LoadFile(spec)
		if err != nil {
			return nil, err
		}

		log.Debugw("loaded descriptor file", "path", spec, "module", src.Name(), "types", len(src.Types()))
		set.Add(src)
	}

	if len(patterns) > 0 {
		pkgs, err := analyze.NewAnalyzer(log).LoadPackages(ctx, patterns...)
		if err != nil {
			return nil, err
		}

		for _, pkg := range pkgs {
			set.Add(pkg)
		}
	}

	log.Infow("sources loaded", "sources", len(set.Sources()), "types", set.Len())

	return set, nil
}
