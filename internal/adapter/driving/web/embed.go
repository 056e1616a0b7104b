package web

import "embed"

// StaticFS holds the embedded static assets (page CSS and the options script).
//
//go:embed static/*
var StaticFS embed.FS

// optionsHelp is the markdown help text shown under the API key form.
//
//go:embed help/options.md
var optionsHelp string
