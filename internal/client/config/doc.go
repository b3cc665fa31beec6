// Package config loads runtime configuration for the notes client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. The environment, after loading ./.env if present: NOTES_API_BASE_URL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL (default http://localhost:8000)
//	-d string   local sqlite database (default notes.db)
//	-t int      request timeout in seconds (default 10)
//	-u string   repl or tui (default repl)
//	-l string   log file (default notes.log)
//	-f string   log format, text or json (default text)
//
// # File schema
//
// Durations use timex.Duration, so "5s" and integer nanoseconds both work:
//
//	api_base_url: http://localhost:8000
//	request_timeout: 5s
//	ui: tui
//	theme: light
package config
