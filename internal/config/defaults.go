// Package config provides configuration loading and defaults for gcrs.
package config

// DefaultScanRoot is the repository root scanned when none is given.
const DefaultScanRoot = "."

// DefaultOutputDir is where summary files are written, relative to the
// scan root unless absolute.
const DefaultOutputDir = "output"

// DefaultConfigDir is the default location for gcrs configuration.
const DefaultConfigDir = "~/.config/gcrs"

// DefaultDBName is the filename for the scan-history SQLite database.
const DefaultDBName = "gcrs.db"

// DefaultWorkers selects the sequential pipeline; values above 1 enable
// the concurrent classify pool.
const DefaultWorkers = 1

// DefaultServerAddr is the listen address for serve mode.
const DefaultServerAddr = "127.0.0.1:8080"

// DefaultLog holds the default logging settings.
var DefaultLog = Log{
	File:       "~/.config/gcrs/gcrs.log",
	Level:      "info",
	MaxSizeMB:  10,
	MaxBackups: 3,
	MaxAgeDays: 28,
	Compress:   false,
}
