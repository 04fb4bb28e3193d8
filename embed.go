// Package scamwatch exposes embedded assets shared by commands, currently the
// SQL migrations applied by the migrate command and the integration tests.
package scamwatch

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
