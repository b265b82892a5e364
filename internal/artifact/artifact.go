// Package artifact models and renders the llms.txt document.
package artifact

import (
	"strings"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// Section is one headed block of rendered item lines.
type Section struct {
	Resource domain.ResourceType
	Heading  string
	Lines    []string
}

// Artifact is an assembled llms.txt document.
type Artifact struct {
	Title       string
	URL         string
	Description string
	Sections    []Section
}

// New creates an artifact with the identity header filled in.
func New(profile domain.ShopProfile) *Artifact {
	return &Artifact{
		Title:       profile.Name,
		URL:         profile.URL,
		Description: profile.Description,
	}
}

// Heading returns the section heading for a resource type.
func Heading(rt domain.ResourceType) string {
	switch rt {
	case domain.ResourceCatalogItem:
		return "Products"
	case domain.ResourceGrouping:
		return "Product Categories"
	case domain.ResourceArticle:
		return "Articles"
	case domain.ResourceDocument:
		return "Pages"
	}
	return rt.Label()
}

// AddSection appends a section for rt. Sections without lines are omitted.
func (a *Artifact) AddSection(rt domain.ResourceType, lines []string) {
	if len(lines) == 0 {
		return
	}
	a.Sections = append(a.Sections, Section{Resource: rt, Heading: Heading(rt), Lines: lines})
}

// String renders the document. Blocks are separated by one blank line and the
// result carries no leading or trailing whitespace.
func (a *Artifact) String() string {
	var b strings.Builder

	b.WriteString("# [")
	b.WriteString(a.Title)
	b.WriteString("](")
	b.WriteString(a.URL)
	b.WriteString(")\n\n")

	if desc := strings.TrimSpace(a.Description); desc != "" {
		b.WriteString("> ")
		b.WriteString(strings.Join(strings.Fields(desc), " "))
		b.WriteString("\n\n")
	}

	for _, s := range a.Sections {
		b.WriteString("## ")
		b.WriteString(s.Heading)
		b.WriteByte('\n')
		for _, line := range s.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return strings.TrimSpace(b.String())
}

// CharCount is the length of the rendered document in characters.
func (a *Artifact) CharCount() int {
	return len([]rune(a.String()))
}
