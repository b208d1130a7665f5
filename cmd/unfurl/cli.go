package main

import (
	"context"
	"io"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Previewer *batch.Previewer
	Sitemaps  unfurl.SitemapService
}

// PreviewCmd handles the main preview operation.
type PreviewCmd struct {
	URLs    []string
	Sitemap bool
	JSON    bool
	Filter  *unfurl.URLFilter
}
