package ygodeck

import "embed"

// StaticFS holds the stylesheet served under /static/
//
//go:embed static
var StaticFS embed.FS
