// Package domain contains the core entities of the blogging backend:
// users and blog posts. The package is intentionally free of external
// dependencies; validation of inbound payloads happens at the API layer
// and persistence concerns live in the store implementations.
package domain
