// Package data embeds the static data shipped with the service
package data

import (
	_ "embed"
)

// SeedCatalogue is the starter catalogue loaded by gamesctl seed
//
//go:embed seed/catalogue.json
var SeedCatalogue []byte
