// Package web embeds the HTML templates of the CineTrack web client.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
