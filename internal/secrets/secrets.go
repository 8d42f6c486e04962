// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads operator credentials from a directory of
// plain-text files. Each file is one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// The arXiv API takes no API key; the only supported key today is
// arxiv-contact-email, which is appended to the User-Agent header as
// arXiv asks of automated clients.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// KeyContactEmail names the contact-email secret file.
const KeyContactEmail = "arxiv-contact-email"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on w but do
// not abort.
func Load(dir string, w io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// UserAgent builds the outbound User-Agent header from the base agent
// string, appending the contact email when one is configured
// (e.g. "arxiv-latex-mcp/0.1 (mailto:ops@example.org)").
func UserAgent(base string, loaded map[string]string) string {
	email := loaded[KeyContactEmail]
	if email == "" {
		return base
	}
	return fmt.Sprintf("%s (mailto:%s)", base, email)
}
