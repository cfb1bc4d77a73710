package contentindex

import "strings"

// Chunk is one immutable unit of reference material.
type Chunk struct {
	Subject   string
	Text      string
	Embedding []float32
}

// SplitChunks splits reference markdown into chunks on blank lines,
// dropping empty segments.
func SplitChunks(content string) []string {
	parts := strings.Split(content, "\n\n")
	chunks := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			chunks = append(chunks, p)
		}
	}
	return chunks
}
