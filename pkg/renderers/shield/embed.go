package shield

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded document template bundle so callers can
// reuse or extend it without importing the renderer internals.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
