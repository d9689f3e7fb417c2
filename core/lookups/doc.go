// Package lookups holds the static game tables the formatters consume as
// read-only constants: collection perks, special abilities, currency emoji,
// equipment slot masks and per-level gas / experience costs.
package lookups
