//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: declared in go.mod as a tool;
//   `go tool goose -dir migrations postgres "$DATABASE_DSN" up`
// - github.com/matryer/moq: regenerates *_mock_test.go via `go generate ./...`
