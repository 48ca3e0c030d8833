package web

import "embed"

// Templates template padrão do recibo.
//
//go:embed templates/*.html
var Templates embed.FS
