// Package store defines the persistence interfaces consumed by the API
// layer, together with the sentinel errors that implementations translate
// database failures into. Concrete implementations live under
// internal/platform/postgres.
package store
