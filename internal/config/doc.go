// Package config defines the application configuration structure and its
// loading logic. Configuration comes from an optional YAML file and from
// environment variables, with the environment taking precedence. The two
// secrets the deployment environment provides, DATABASE_URL and
// JWT_SECRET, are bound both with and without the BLOG_ prefix.
package config
