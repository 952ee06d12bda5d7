package narrator

import "strings"

// Managed section markers follow the pattern:
//
//	<!-- badgekit:<name> -->
//	...managed content...
//	<!-- /badgekit:<name> -->
//
// Everything between the markers is replaced on each render. Content
// outside markers is never touched. Sections may sit anywhere in a
// document, including inline on a single line.

// SectionStart returns the opening marker for a named managed section.
func SectionStart(name string) string {
	return "<!-- badgekit:" + name + " -->"
}

// SectionEnd returns the closing marker for a named managed section.
func SectionEnd(name string) string {
	return "<!-- /badgekit:" + name + " -->"
}

// WrapSection wraps content in named section markers (block mode with newlines).
func WrapSection(name, content string) string {
	return SectionStart(name) + "\n" + content + "\n" + SectionEnd(name)
}

// span locates a managed section: body is the text between the markers
// and [from, to) covers both markers. The end marker is only searched for
// after the start marker.
type span struct {
	from, to int
	body     string
}

// inline reports whether both markers sit on one line.
func (s span) inline() bool {
	return !strings.Contains(s.body, "\n")
}

func locate(content, name string) (span, bool) {
	start, end := SectionStart(name), SectionEnd(name)

	from := strings.Index(content, start)
	if from < 0 {
		return span{}, false
	}
	bodyStart := from + len(start)
	n := strings.Index(content[bodyStart:], end)
	if n < 0 {
		return span{}, false
	}
	return span{
		from: from,
		to:   bodyStart + n + len(end),
		body: content[bodyStart : bodyStart+n],
	}, true
}

// ReplaceSection replaces the body of the named section, keeping the
// markers. Inline sections stay on one line; block sections get the
// replacement on lines of its own. Content is returned unchanged with
// found=false when the section is missing.
func ReplaceSection(content, name, replacement string) (updated string, found bool) {
	sp, ok := locate(content, name)
	if !ok {
		return content, false
	}

	section := WrapSection(name, replacement)
	if sp.inline() {
		section = SectionStart(name) + replacement + SectionEnd(name)
	}
	return content[:sp.from] + section + content[sp.to:], true
}

// HasSection reports whether content contains markers for the named section.
func HasSection(content, name string) bool {
	_, ok := locate(content, name)
	return ok
}

// SectionContent returns the body of the named section without the
// newlines that pad a block section.
func SectionContent(content, name string) (string, bool) {
	sp, ok := locate(content, name)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(strings.TrimSuffix(sp.body, "\n"), "\n"), true
}

// Inject replaces the named section of doc with content. When the section
// does not exist yet, a block section is appended at the end of doc.
// Reports whether an existing section was replaced.
func Inject(doc, name, content string) (string, bool) {
	if updated, found := ReplaceSection(doc, name, content); found {
		return updated, true
	}

	section := WrapSection(name, content) + "\n"
	trimmed := strings.TrimRight(doc, "\n")
	if trimmed == "" {
		return section, false
	}
	return trimmed + "\n\n" + section, false
}
