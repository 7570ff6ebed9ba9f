package rssos

// SiteMeta describes the classified site for feed serialization.
type SiteMeta struct {
	OriginURL string    `json:"originUrl"`
	Title     string    `json:"title"`
	Archetype Archetype `json:"archetype"`
	Platform  string    `json:"platform"`
}

// FeedWriter serializes extracted records into a feed document. The core
// does not constrain the wire format; the bundled implementation emits
// RSS 2.0.
type FeedWriter interface {
	// Write renders the records and site metadata as a feed document.
	Write(records []*Record, meta SiteMeta) (string, error)
}
