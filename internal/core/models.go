package core

// Tag names assigned by the ranking pass. Pre-release token names are used
// verbatim as additional tags.
const (
	TagLatest  = "latest"
	TagDefault = "default"
)

// Match represents one discovered executable version
type Match struct {
	Path        string         `json:"path"`
	Version     string         `json:"version"`
	TokenValues map[string]int `json:"-"`
	Tags        []string       `json:"tags,omitempty"`
}

// TokenValue returns the extracted value for a token, or 0 when the token
// was not part of the owning template
func (m *Match) TokenValue(name string) int {
	return m.TokenValues[name]
}

// HasTag reports whether the match carries the given tag
func (m *Match) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DiscoveryOptions contains the inputs of one discovery run
type DiscoveryOptions struct {
	Templates        []string // raw path templates, version delimited with brackets
	PreReleaseTokens []string // token names that mark a version as pre-release
	SortPriority     []string // token precedence for sorting; empty = sort by version string
	DefaultVersion   string   // explicit version to tag as default instead of the latest
}

// Exit codes
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitInvalidArgs = 2
	ExitNoMatch     = 3
	ExitLaunch      = 4
	ExitInterrupted = 130
)
