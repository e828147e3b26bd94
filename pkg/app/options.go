package app

import (
	cliflag "k8s.io/component-base/cli/flag"
)

// CliOptions abstracts configuration options for reading parameters from the
// command line.
type CliOptions interface {
	// Flags returns the flag groups, one section per group in --help.
	Flags() cliflag.NamedFlagSets

	// Complete fills in derived values after flags and config are parsed.
	Complete() error

	// Validate checks the completed options.
	Validate() error
}

// NamedFlagSetOptions is the name used by command packages for CliOptions.
type NamedFlagSetOptions = CliOptions
