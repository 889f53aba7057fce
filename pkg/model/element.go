package model

// Fragment is one run of text inside a styled text element.
type Fragment struct {
	Text       string `yaml:"t"            json:"t"`            // Run text (may contain HTML)
	Emphasized bool   `yaml:"em,omitempty" json:"em,omitempty"` // Bold / emphasized style
}

// Element represents a node in a captured component tree.
type Element struct {
	ID               int        `yaml:"i,omitempty"    json:"i,omitempty"`    // Stable ID, assigned at load when absent
	Kind             Kind       `yaml:"k"              json:"k"`              // Element kind code
	Text             string     `yaml:"t,omitempty"    json:"t,omitempty"`    // Raw text (may contain HTML)
	Bounds           [4]int     `yaml:"b,omitempty"    json:"b,omitempty"`    // [x, y, width, height] in parent coordinates
	Screen           *Point     `yaml:"xy,omitempty"   json:"xy,omitempty"`   // On-screen location, present only while showing
	Visible          *bool      `yaml:"vis,omitempty"  json:"vis,omitempty"`  // nil or true = visible (omit); false = hidden (include)
	Selected         bool       `yaml:"s,omitempty"    json:"s,omitempty"`    // Toggle / tab selection state
	Emphasized       bool       `yaml:"em,omitempty"   json:"em,omitempty"`   // Bold / emphasized label style
	Fragments        []Fragment `yaml:"fr,omitempty"   json:"fr,omitempty"`   // Styled text runs
	Tabs             []string   `yaml:"tabs,omitempty" json:"tabs,omitempty"` // Tab titles, index-addressed containers
	SelectedTab      *int       `yaml:"st,omitempty"   json:"st,omitempty"`   // Selected tab index into Tabs
	SelectedTabTitle string     `yaml:"stt,omitempty"  json:"stt,omitempty"`  // Selected tab title, preferred over SelectedTab
	Children         []Element  `yaml:"c,omitempty"    json:"c,omitempty"`    // Child elements, insertion order = visual order
}
