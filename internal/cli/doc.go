// Package cli defines the Cobra command tree for the fsattr CLI. Each file
// in this package registers one top-level command (stat, set-readonly,
// copy-attrs, watch, config, version) with the root command. Commands only
// parse flags and render results; the attribute work happens in pkg/fsattr.
package cli
