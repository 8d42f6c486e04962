// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

const defaultMaxIncludeDepth = 10

// includePattern matches \input{name} and \include{name} directives.
var includePattern = regexp.MustCompile(`\\(?:input|include)\{([^}]+)\}`)

// flatten produces one linear document starting from the main file:
// comments are stripped and include directives are replaced by the
// referenced file's (also stripped) contents, recursively up to
// maxDepth levels. Unresolvable includes are left in place.
func flatten(files map[string]string, main string, maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = defaultMaxIncludeDepth
	}
	return expand(files, stripComments(files[main]), maxDepth)
}

// expand replaces include directives with file contents, depth-first.
func expand(files map[string]string, content string, depth int) string {
	if depth == 0 {
		return content
	}
	return includePattern.ReplaceAllStringFunc(content, func(directive string) string {
		name := includePattern.FindStringSubmatch(directive)[1]
		body, ok := lookupInclude(files, name)
		if !ok {
			return directive
		}
		return expand(files, stripComments(body), depth-1)
	})
}

// lookupInclude resolves an include argument to archive contents.
// LaTeX defaults the extension to .tex when the argument has none.
func lookupInclude(files map[string]string, name string) (string, bool) {
	if body, ok := files[name]; ok {
		return body, true
	}
	if !strings.Contains(name, ".") {
		if body, ok := files[name+".tex"]; ok {
			return body, true
		}
	}
	return "", false
}

// stripComments removes % comments line by line. An escaped \% is
// literal text and survives.
func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if idx := commentStart(line); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// commentStart returns the index of the first unescaped % in line, or
// -1 when the line has no comment.
func commentStart(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != '%' {
			continue
		}
		// Count preceding backslashes: an odd number escapes the %.
		backslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i
		}
	}
	return -1
}
