package brochure

import "embed"

// EmbeddedAssets contains static assets shipped with the site: forms.js,
// which submits the contact and newsletter forms as JSON.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
