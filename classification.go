package rssos

// Archetype is the mutually-exclusive site category chosen by classification.
type Archetype string

// Supported site archetypes.
const (
	ArchetypeUnknown    Archetype = "unknown"
	ArchetypeBlog       Archetype = "blog"
	ArchetypePortfolio  Archetype = "portfolio"
	ArchetypeNews       Archetype = "news"
	ArchetypeEcommerce  Archetype = "ecommerce"
	ArchetypeRepository Archetype = "repository"
)

// Platform is a finer-grained label within an archetype, usually the
// publishing engine that generated the page.
const (
	PlatformUnknown   = "unknown"
	PlatformWordPress = "wordpress"
	PlatformGhost     = "ghost"
	PlatformJekyll    = "jekyll"
	PlatformHugo      = "hugo"
	PlatformBear      = "bearblog"
	PlatformShopify   = "shopify"
	PlatformFramer    = "framer"
	PlatformWebflow   = "webflow"
	PlatformGitHub    = "github"
	PlatformGitLab    = "gitlab"
)

// SelectorRole names where, within a document, a given kind of information
// is expected to live. Missing roles signal the extractor to fall back to a
// default.
type SelectorRole string

// Selector roles populated by detectors.
const (
	RoleArticles SelectorRole = "articles"
	RoleTitle    SelectorRole = "title"
	RoleContent  SelectorRole = "content"
	RoleLink     SelectorRole = "link"
	RoleDate     SelectorRole = "date"
	RoleAuthor   SelectorRole = "author"
	RoleImage    SelectorRole = "image"
	RolePrice    SelectorRole = "price"
	RoleSummary  SelectorRole = "summary"
)

// SelectorRules maps roles to CSS selector patterns.
type SelectorRules map[SelectorRole]string

// Clone returns a copy of the rules. Classification results are immutable
// after construction, so merging rules always works on a copy.
func (r SelectorRules) Clone() SelectorRules {
	out := make(SelectorRules, len(r))
	for role, sel := range r {
		out[role] = sel
	}
	return out
}

// Classification is the outcome of scoring a page against known site
// archetypes. Constructed once per request, immutable thereafter.
type Classification struct {
	// OriginURL is the page's logical URL, used for link resolution and
	// identifier salting.
	OriginURL string `json:"originUrl"`

	// Archetype is the winning site category.
	Archetype Archetype `json:"archetype"`

	// Platform is the detected publishing engine, "unknown" if undetermined.
	Platform string `json:"platform"`

	// Confidence is an accumulated heuristic tally in [0,100]. It is not a
	// probability; ties between detectors are broken by declaration order.
	Confidence int `json:"confidence"`

	// Rules holds the selector patterns the extractor should use. Empty or
	// missing roles mean "use the generic default".
	Rules SelectorRules `json:"rules"`

	// MatchedFeatures is an append-only audit trail of which signals fired,
	// deterministic and reproducible for the same input.
	MatchedFeatures []string `json:"matchedFeatures"`
}

// Validate returns an error if the classification contains invalid fields.
func (c *Classification) Validate() error {
	if c.OriginURL == "" {
		return Errorf(EINVALID, "classification origin URL required")
	}
	if c.Archetype == "" {
		return Errorf(EINVALID, "classification archetype required")
	}
	if c.Confidence < 0 || c.Confidence > 100 {
		return Errorf(EINVALID, "classification confidence out of range: %d", c.Confidence)
	}
	return nil
}

// Classifier scores a page against known site archetypes.
type Classifier interface {
	// Classify analyzes HTML and returns the best-matching archetype with
	// extraction rules. It never fails: on total ambiguity it returns the
	// generic fallback result.
	Classify(html string, originURL string) *Classification
}
