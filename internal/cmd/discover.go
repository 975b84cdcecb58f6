package cmd

import (
	"github.com/quantmind-br/appfind/internal/config"
	"github.com/quantmind-br/appfind/internal/core"
	"github.com/quantmind-br/appfind/internal/finder"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// discoveryFs is the filesystem discovery runs against. Tests swap in a
// memory-backed fs.
var discoveryFs afero.Fs = afero.NewOsFs()

// discoverMatches runs template discovery with the effective configuration
// and maps an empty result to core.ErrNoMatches: the engine treats "found
// nothing" as a result, the command surface treats it as a failure.
func discoverMatches(cfg *config.Config, log *zerolog.Logger) ([]*core.Match, error) {
	opts := core.DiscoveryOptions{
		Templates:        cfg.Discovery.Templates,
		PreReleaseTokens: cfg.Discovery.PreReleaseTokens,
		SortPriority:     cfg.Discovery.SortPriority,
		DefaultVersion:   cfg.Discovery.DefaultVersion,
	}

	matches, err := finder.New(discoveryFs, log).Discover(opts)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, core.ErrNoMatches
	}
	return matches, nil
}
