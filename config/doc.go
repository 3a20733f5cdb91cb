// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Missing values fall back to built-in defaults so the services can start
// with an empty file.
package config
