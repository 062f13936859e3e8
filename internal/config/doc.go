// Package config loads, normalizes, and validates reelcat's TOML
// configuration.
//
// Load resolves the config path (explicit flag or the default under
// ~/.config/reelcat), applies repository defaults for anything the file
// leaves unset, expands ~ in paths, and rejects unusable values before
// any other package sees them. A missing config file is not an error;
// defaults apply.
package config
