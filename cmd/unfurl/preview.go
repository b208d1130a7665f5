package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/batch"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	urls := c.URLs

	if c.Sitemap {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, urls[0], c.Filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", unfurl.ErrorMessage(err))
			return err
		}
		if len(discovered) == 0 {
			fmt.Fprintln(deps.Stderr, "No URLs found in sitemap")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "Found %d URLs\n", len(discovered))
		urls = discovered
	}

	// Progress goes to stderr so stdout stays machine-readable.
	progress := func(p batch.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.URL, p.Err)
		}
	}

	results, err := deps.Previewer.PreviewAll(deps.Ctx, urls, progress)
	if err != nil {
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, results)
	}
	writeText(deps.Stdout, results)
	return nil
}

// previewRecord is the JSON shape of one preview result.
type previewRecord struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Domain      string `json:"domain,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Cached      bool   `json:"cached,omitempty"`
	Error       string `json:"error,omitempty"`
}

func writeJSON(w io.Writer, results []batch.Result) error {
	records := make([]previewRecord, 0, len(results))
	for _, r := range results {
		rec := previewRecord{URL: r.URL, Cached: r.Cached}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		if r.Preview != nil {
			rec.Title = r.Preview.Title
			rec.Description = r.Preview.Description
			rec.Domain = r.Preview.Domain
			rec.ImageURL = r.Preview.ImageURLString()
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeText(w io.Writer, results []batch.Result) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.URL)
		if r.Err != nil {
			fmt.Fprintf(w, "  error: %v\n", r.Err)
			continue
		}
		writeField(w, "title", r.Preview.Title)
		writeField(w, "description", r.Preview.Description)
		writeField(w, "domain", r.Preview.Domain)
		writeField(w, "image", r.Preview.ImageURLString())
	}
}

func writeField(w io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", name, value)
}
