package client

import "errors"

var (
	// ErrClientNotFound is returned when no client matches.
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
