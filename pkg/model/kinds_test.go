package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"chk", KindCheckbox},
		{"checkbox", KindCheckbox},
		{"radio", KindRadio},
		{"radiobutton", KindRadio},
		{"lbl", KindLabel},
		{"label", KindLabel},
		{"grp", KindContainer},
		{"group", KindContainer},
		{"panel", KindContainer},
		{"tab", KindTabs},
		{"tabs", KindTabs},
		{"tabcontainer", KindTabs},
		{"sep", KindSeparator},
		{"titledseparator", KindSeparator},
		{"border", KindBorder},
		{"borderpanel", KindBorder},
		{"titledborder", KindBorder},
		{"styled", KindStyled},
		{"styledtext", KindStyled},
		{"other", KindOther},
		{"window", KindOther},
		{"", KindOther},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.input); got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCheckbox, "chk"},
		{KindSeparator, "sep"},
		{KindContainer, "grp"},
		{KindStyled, "styled"},
		{Kind(99), "other"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindIsToggle(t *testing.T) {
	for _, k := range []Kind{KindCheckbox, KindRadio} {
		if !k.IsToggle() {
			t.Errorf("%v.IsToggle() = false, want true", k)
		}
	}
	for _, k := range []Kind{KindOther, KindLabel, KindContainer, KindTabs, KindSeparator, KindBorder, KindStyled} {
		if k.IsToggle() {
			t.Errorf("%v.IsToggle() = true, want false", k)
		}
	}
}

func TestKindCodecs(t *testing.T) {
	// Input accepts long names; output always uses the compact code.
	var el Element
	if err := json.Unmarshal([]byte(`{"k":"checkbox"}`), &el); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if el.Kind != KindCheckbox {
		t.Errorf("json kind = %v, want %v", el.Kind, KindCheckbox)
	}
	b, err := json.Marshal(KindCheckbox)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	if string(b) != `"chk"` {
		t.Errorf("json code = %s, want %q", b, "chk")
	}

	var el2 Element
	if err := yaml.Unmarshal([]byte("k: titledborder"), &el2); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if el2.Kind != KindBorder {
		t.Errorf("yaml kind = %v, want %v", el2.Kind, KindBorder)
	}
	out, err := yaml.Marshal(KindSeparator)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	if string(out) != "sep\n" {
		t.Errorf("yaml code = %q, want %q", out, "sep\n")
	}
}
