// Package config manages user-level settings stored at ~/.fsattr/config.yaml
// (or $FSATTR_HOME/config.yaml). It loads the file through Viper with
// FSATTR_-prefixed environment overrides, writes single keys back, and
// validates the file against an embedded JSON schema.
package config
