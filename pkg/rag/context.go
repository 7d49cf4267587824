package rag

import (
	"fmt"
	"strings"
)

// BuildContext formats retrieved matches into a numbered, readable block.
func BuildContext(matches []Match) string {
	parts := make([]string, 0, len(matches))
	for i, m := range matches {
		category := m.Metadata["category"]
		if category == "" {
			category = "Unknown"
		}
		parts = append(parts, fmt.Sprintf("[%d] Category: %s\nQ: %s\nA: %s",
			i+1, category, m.Metadata["question"], m.Metadata["answer"]))
	}
	return strings.Join(parts, "\n\n")
}
