package openapi

import "embed"

// FS carries the OpenAPI document served at /api/openapi.yaml.
//
//go:embed trashion.yaml
var FS embed.FS
