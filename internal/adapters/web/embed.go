// Package web serves the doctor directory page and its JSON API over HTTP.
// Routing, rendering and access logging are gin's; the page template and its
// assets are embedded so the binary runs from any working directory.
package web

import "embed"

//go:embed templates static
var assetsFS embed.FS
