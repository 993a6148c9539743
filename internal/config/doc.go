// Package config provides configuration structures and utilities for the
// wikipedia-philosophy CLI. It defines the traversal and content-service
// defaults, validation, and YAML config file loading.
package config
