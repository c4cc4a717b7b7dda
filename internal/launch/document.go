package launch

import (
	"path/filepath"
	"strings"
)

// LanguageJavaScript is the language identifier for JavaScript documents.
const LanguageJavaScript = "javascript"

// Document describes the editor's currently active document.
type Document struct {
	// Path is the absolute filesystem path of the document.
	Path string

	// LanguageID is the host's language identifier (e.g., "javascript").
	LanguageID string
}

// IsJavaScript reports whether the document is tagged as JavaScript.
func (d *Document) IsJavaScript() bool {
	return d != nil && d.LanguageID == LanguageJavaScript
}

// NewDocument creates a Document for path, detecting the language from the
// file extension when languageID is empty.
func NewDocument(path, languageID string) *Document {
	if languageID == "" {
		languageID = DetectLanguage(path)
	}
	return &Document{Path: path, LanguageID: languageID}
}

// DetectLanguage maps a file name to a language identifier.
// Unknown extensions map to the empty identifier.
func DetectLanguage(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".js", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return ""
	}
}
