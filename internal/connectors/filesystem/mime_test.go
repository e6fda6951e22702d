package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		filename     string
		expectedMIME string
	}{
		// No extension
		{"file", "text/plain"},
		{"noext", "text/plain"},

		// Document formats
		{"doc.md", "text/markdown"},
		{"doc.markdown", "text/markdown"},
		{"notes.txt", "text/plain"},
		{"page.html", "text/html"},
		{"page.htm", "text/html"},
		{"doc.pdf", "application/pdf"},
		{"report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},

		// Source and config files
		{"code.go", "text/x-go"},
		{"script.py", "text/x-python"},
		{"lib.rs", "text/x-rust"},
		{"app.ts", "text/typescript"},
		{"config.yaml", "text/yaml"},
		{"config.yml", "text/yaml"},
		{"config.toml", "text/toml"},
		{"script.sh", "text/x-shellscript"},
		{"query.sql", "text/x-sql"},
		{"data.json", "application/json"},
		{"data.xml", "application/xml"},

		// Platform table
		{"image.png", "image/png"},

		// Unknown extension - use truly obscure extensions to avoid platform MIME registrations
		{"file.zzzzunknown", "application/octet-stream"},
		{"file.xyzabc123", "application/octet-stream"},

		// Case insensitive
		{"FILE.MD", "text/markdown"},
		{"FILE.GO", "text/x-go"},
		{"File.Yaml", "text/yaml"},
		{"Report.PDF", "application/pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expectedMIME, detectMIMEType(tt.filename))
		})
	}

	t.Run("strips charset from mime type", func(t *testing.T) {
		for _, file := range []string{"file.html", "file.css", "file.js"} {
			mimeType := detectMIMEType(file)
			assert.NotContains(t, mimeType, "charset")
			assert.NotContains(t, mimeType, ";")
		}
	})
}
