package jsdoc

import "strings"

// Comment is the parsed shape of one documentation comment: which
// parameters it documents, in order, and whether it carries a return
// annotation and a free-text description. Built lazily per construct
// and discarded after that construct's checks run.
type Comment struct {
	Params         []string
	HasReturn      bool
	HasDescription bool
}

// Documents reports whether the comment documents the named parameter.
func (c *Comment) Documents(name string) bool {
	for _, p := range c.Params {
		if p == name {
			return true
		}
	}
	return false
}

// Parse extracts the doc-comment model from the raw token text,
// delimiters included. Unrecognized tags are ignored.
func Parse(text string) Comment {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")

	var c Comment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			c.HasDescription = true
			continue
		}
		tag, rest := splitTag(line)
		switch tag {
		case "@param", "@arg", "@argument":
			if name := paramName(rest); name != "" {
				c.Params = append(c.Params, name)
			}
		case "@return", "@returns":
			c.HasReturn = true
		}
	}
	return c
}

func splitTag(line string) (tag, rest string) {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}

// paramName pulls the parameter name from a @param tag body, skipping
// an optional braced type annotation. Optional-parameter brackets
// ([name] or [name=default]) are unwrapped.
func paramName(rest string) string {
	if strings.HasPrefix(rest, "{") {
		depth, end := 0, -1
		for i := 0; i < len(rest); i++ {
			switch rest[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				end = i
				break
			}
		}
		if end < 0 {
			return ""
		}
		rest = strings.TrimSpace(rest[end+1:])
	}
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}
	if strings.HasPrefix(rest, "[") {
		rest = strings.TrimPrefix(rest, "[")
		rest = strings.TrimSuffix(rest, "]")
		if i := strings.IndexByte(rest, '='); i >= 0 {
			rest = rest[:i]
		}
	}
	return rest
}
