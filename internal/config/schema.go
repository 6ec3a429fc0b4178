package config

import (
	_ "embed"
)

// configSchemaCUE is the CUE schema every config file must satisfy.
//
//go:embed schema.cue
var configSchemaCUE []byte

// schemaDefinition is the definition config files are unified with.
const schemaDefinition = "#Config"
