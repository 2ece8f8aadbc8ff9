//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerates the *_mock_test.go files
// - github.com/pressly/goose/v3/cmd/goose: applies migrations/ outside the server
// - github.com/sqlc-dev/sqlc/cmd/sqlc: regenerates internal/adapter/postgres/*/sqlc
//   from sqlc.yaml (go tool sqlc generate)
