// Package api contains the HTTP request handlers for the blogging
// backend, the request/response models with their validation tags, and
// the error-kind table that pins every failure to one wire response.
package api
