package model

import "strings"

// entityReplacer decodes the entities that show up in dialog label HTML.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
)

// JoinFragments concatenates styled text runs with single spaces. With
// emphasizedOnly set, runs not flagged emphasized are skipped.
func JoinFragments(frs []Fragment, emphasizedOnly bool) string {
	var parts []string
	for _, fr := range frs {
		if emphasizedOnly && !fr.Emphasized {
			continue
		}
		if fr.Text != "" {
			parts = append(parts, fr.Text)
		}
	}
	return strings.Join(parts, " ")
}

// CleanText strips HTML tags from label text, decodes common entities, and
// collapses whitespace. Dialog labels frequently arrive as fragments like
// "<html><b>Editor</b></html>"; comparisons and output always use the
// cleaned form.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, "<&") {
		var b strings.Builder
		b.Grow(len(s))
		inTag := false
		for _, r := range s {
			switch {
			case r == '<':
				inTag = true
				// Tags act as word boundaries.
				b.WriteByte(' ')
			case r == '>':
				inTag = false
			case !inTag:
				b.WriteRune(r)
			}
		}
		s = entityReplacer.Replace(b.String())
	}
	return strings.Join(strings.Fields(s), " ")
}
