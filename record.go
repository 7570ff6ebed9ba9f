package rssos

import "context"

// Record is one normalized extracted content item (article, post, project,
// product). Records are created fresh per extraction call and never mutated
// after being appended to the result list.
type Record struct {
	// ID is deterministic and content-addressed: derived from the record's
	// link (or title) plus the origin URL. Stable across repeated
	// extractions of the same input, unique within one extraction run.
	ID string `json:"id"`

	// Title is never empty; candidates without a derivable title are
	// dropped.
	Title string `json:"title"`

	// Link is an absolute URL, resolved against the origin. Defaults to the
	// origin when unresolvable.
	Link string `json:"link"`

	// Summary is bounded in length, with an ellipsis marker when truncated.
	Summary string `json:"summary"`

	// Body is a sanitized markup fragment: script/style/ad/footer regions
	// stripped, relative src/href rewritten to absolute.
	Body string `json:"body"`

	// PublishedAt is an RFC 3339 timestamp string, defaulting to the
	// extraction time when undeterminable.
	PublishedAt string `json:"publishedAt"`

	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Link == "" {
		return Errorf(EINVALID, "record link required")
	}
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	return nil
}

// Extractor pulls normalized records out of a page using the selector rules
// chosen by classification.
type Extractor interface {
	// Extract applies the classification's rules to the HTML and returns an
	// ordered list of records, possibly empty. An empty list is a valid
	// result, not an error; errors are reserved for unusable input (e.g. an
	// unparseable origin URL). Enrichment fetches performed by some
	// strategies honor the context deadline.
	Extract(ctx context.Context, html string, c *Classification) ([]*Record, error)
}
