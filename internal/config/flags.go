package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// usageOutput receives the flag usage printed for -h and -help.
var usageOutput io.Writer = os.Stderr

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-f field document path
//	-get print the value of a field (case-insensitive) and exit
//	-import field document merged into the edited one
//	-mask text shown in place of hidden values
//	-width row width in cells
//	-height field list height in lines
//	-log log file path
//	-log-level log level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("fields", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.App.FieldsFile, "f", "", "Field document path")
	fs.StringVar(&cfg.App.Lookup, "get", "", "Print the value of a field and exit")
	fs.StringVar(&cfg.App.Import, "import", "", "Field document to merge")
	fs.StringVar(&cfg.UI.Mask, "mask", "", "Text shown in place of hidden values")
	fs.IntVar(&cfg.UI.Width, "width", 0, "Row width")
	fs.IntVar(&cfg.UI.Height, "height", 0, "Field list height")
	fs.StringVar(&cfg.Log.File, "log", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(usageOutput)
			fmt.Fprintf(usageOutput, "Usage of %s:\n", fs.Name())
			fs.PrintDefaults()
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
