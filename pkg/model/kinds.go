package model

import "gopkg.in/yaml.v3"

// Kind classifies an element. The set is closed: resolver dispatch switches
// over it exhaustively, and unknown wire values collapse to KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindLabel
	KindCheckbox
	KindRadio
	KindContainer
	KindTabs
	KindSeparator
	KindBorder
	KindStyled
)

// kindCodes maps kinds to their compact wire codes.
var kindCodes = map[Kind]string{
	KindOther:     "other",
	KindLabel:     "lbl",
	KindCheckbox:  "chk",
	KindRadio:     "radio",
	KindContainer: "grp",
	KindTabs:      "tab",
	KindSeparator: "sep",
	KindBorder:    "border",
	KindStyled:    "styled",
}

// kindAliases maps accepted input spellings to kinds. Output always uses the
// compact code; input also accepts the long names producers tend to emit.
var kindAliases = map[string]Kind{
	"other":            KindOther,
	"lbl":              KindLabel,
	"label":            KindLabel,
	"chk":              KindCheckbox,
	"checkbox":         KindCheckbox,
	"radio":            KindRadio,
	"radiobutton":      KindRadio,
	"grp":              KindContainer,
	"group":            KindContainer,
	"container":        KindContainer,
	"panel":            KindContainer,
	"tab":              KindTabs,
	"tabs":             KindTabs,
	"tabcontainer":     KindTabs,
	"sep":              KindSeparator,
	"separator":        KindSeparator,
	"titledseparator":  KindSeparator,
	"border":           KindBorder,
	"borderpanel":      KindBorder,
	"titledborder":     KindBorder,
	"styled":           KindStyled,
	"styledtext":       KindStyled,
}

// ParseKind converts a wire code or long name to a Kind.
// Unknown values map to KindOther rather than erroring.
func ParseKind(s string) Kind {
	if k, ok := kindAliases[s]; ok {
		return k
	}
	return KindOther
}

// IsToggle reports whether the kind is a checkbox or radio button.
func (k Kind) IsToggle() bool {
	return k == KindCheckbox || k == KindRadio
}

func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return "other"
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON input.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*k = ParseKind(s)
	return nil
}
