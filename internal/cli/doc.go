// Package cli prints journey fetch results for the non-interactive commands.
//
// Results can be printed as plain text rows ("07:12 → 07:31  19 min"), as
// rounded tables, or serialised to JSON or YAML with the raw provider
// timestamps kept intact.
package cli
