package genconfig

import (
	"github.com/arthur-debert/carrierlock/pkg/config"
	"github.com/arthur-debert/carrierlock/pkg/logging"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Write stores the configuration instead of only returning it
	Write bool
	// Path is where to write, the user config path when empty
	Path string
	// Force replaces an existing file
	Force bool
}

// GenConfigResult is the generated configuration and where it went
type GenConfigResult struct {
	ConfigContent string
	// FileWritten is empty unless the configuration was written
	FileWritten string
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{ConfigContent: config.GenerateConfigContent()}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	path := opts.Path
	if path == "" {
		path = config.UserConfigPath()
	}
	if err := config.WriteUserConfig(path, opts.Force); err != nil {
		return nil, err
	}
	result.FileWritten = path

	logger.Info().Str("path", path).Bool("force", opts.Force).Msg("Wrote config file")
	return result, nil
}
