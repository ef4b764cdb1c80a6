// Package migrations embeds the schema files of the SQL backends
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
