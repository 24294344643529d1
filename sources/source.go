package sources

import "strings"

type Source struct {
	// Name is where the content came from, used in diagnostics.
	Name string
	// Module is the module name handed to the code generator.
	Module  string
	Content string
	Lines   []string
}

func New(name string, module string, content string) *Source {
	return &Source{
		Name:    name,
		Module:  module,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Line returns the 1-based line, or false when out of range.
func (s *Source) Line(n int) (string, bool) {
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[idx], "\r"), true
}
