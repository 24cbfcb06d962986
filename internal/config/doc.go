// Package config loads jlv's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/jlv/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	tick_ms = 250            # drain/redraw period, minimum 10
//	max_line_bytes = 1048576 # longer lines are skipped as malformed
//
//	[fields]
//	level   = ["level_name", "level", "severity"]
//	time    = ["datetime", "time", "timestamp", "ts"]
//	message = ["message", "msg"]
//	context = ["context", "extra"]
//
// Each [fields] entry is an ordered candidate list: the renderer uses the
// first key present in a record. An empty list keeps the default.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and negative numeric settings. A missing
// file is not an error.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	lines := logtail.NewScanner(os.Stdin, cfg.MaxLineBytes)
package config
