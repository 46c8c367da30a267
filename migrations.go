// Package pollsapi is the root of the polls service module. It embeds the SQL
// migrations so the binary and the tests apply the same schema.
package pollsapi

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
