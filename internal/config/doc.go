// Package config loads, normalizes, and validates tagsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. Every setting has a usable
// default, so the tool runs without any configuration present; the file only
// exists to pick the sanitization policy, report naming scheme, and storage
// locations.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical policy names, and clear validation errors.
package config
