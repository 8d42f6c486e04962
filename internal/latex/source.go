// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the two-byte gzip header.
var gzipMagic = []byte{0x1f, 0x8b}

// extractSource turns a raw e-print payload into a map of file name to
// contents. Payloads come in three shapes: a gzipped tar archive (the
// common case), a lone gzipped .tex file, or an uncompressed single
// file.
func extractSource(payload []byte) (map[string]string, error) {
	if bytes.HasPrefix(payload, gzipMagic) {
		gz, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("decompressing payload: %w", err)
		}
		defer gz.Close()

		decompressed, err := io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("decompressing payload: %w", err)
		}
		payload = decompressed
	}

	if isTar(payload) {
		return extractTar(payload)
	}

	// A single flat file; give it a conventional name.
	return map[string]string{"main.tex": string(payload)}, nil
}

// isTar sniffs the ustar magic at offset 257.
func isTar(payload []byte) bool {
	const magicOffset = 257
	return len(payload) > magicOffset+5 &&
		bytes.Equal(payload[magicOffset:magicOffset+5], []byte("ustar"))
}

// extractTar reads all regular files from a tar archive. Only text
// sources matter for flattening; binary assets (figures) are skipped.
func extractTar(payload []byte) (map[string]string, error) {
	files := make(map[string]string)
	tr := tar.NewReader(bytes.NewReader(payload))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := path.Clean(hdr.Name)
		if !isTextSource(name) {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("reading %s from archive: %w", name, err)
		}
		files[name] = string(data)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("archive contains no LaTeX sources")
	}
	return files, nil
}

// isTextSource reports whether a file participates in flattening.
func isTextSource(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".tex", ".sty", ".cls", ".bbl", ".bib":
		return true
	}
	return false
}

// findMainFile picks the document root: a .tex file containing
// \documentclass (or the older \documentstyle). When several qualify,
// the first in name order that also contains \begin{document} wins, so
// repeated fetches of the same archive flatten identically.
func findMainFile(files map[string]string) (string, error) {
	var candidates []string
	for name, content := range files {
		if strings.ToLower(path.Ext(name)) != ".tex" {
			continue
		}
		if strings.Contains(content, `\documentclass`) || strings.Contains(content, `\documentstyle`) {
			candidates = append(candidates, name)
		}
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no file with \\documentclass found")
	case 1:
		return candidates[0], nil
	}

	// Map iteration order is random; fix it before tie-breaking.
	sort.Strings(candidates)

	for _, name := range candidates {
		if strings.Contains(files[name], `\begin{document}`) {
			return name, nil
		}
	}
	return candidates[0], nil
}
