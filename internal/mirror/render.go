package mirror

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/haierkeys/memos-mirror/internal/memos"
	"github.com/haierkeys/memos-mirror/pkg/fileurl"
)

// tagPattern matches an inline tag in either remote form ("#tag" or
// "#tag#"). The capture group is the bare tag name.
var tagPattern = regexp.MustCompile(`#([^#\s]+)#?`)

var imageExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true,
	"gif": true, "bmp": true, "webp": true,
}

// ResolvedResource pairs a remote attachment with the local path it was
// materialized to. LocalPath is empty when the download failed.
type ResolvedResource struct {
	Ref       memos.Resource
	LocalPath string
}

// RewriteTags normalizes remote tag syntax to plain markdown tags:
// "#tag#" becomes "#tag", already-bare tags pass through unchanged.
func RewriteTags(content string) string {
	return tagPattern.ReplaceAllString(content, "#$1")
}

// ExtractTags returns the distinct bare tag names in content, in order
// of first occurrence.
func ExtractTags(content string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, m := range tagPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tags = append(tags, m[1])
		}
	}
	return tags
}

// IsImage reports whether a file name carries a known raster image
// extension.
func IsImage(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(fileurl.GetFileExt(filename)), ".")
	return imageExts[ext]
}

// RenderDocument builds the full markdown document for a memo: rewritten
// body, inline image embeds, an attachment link section for everything
// else, and a trailing metadata callout. Resources that failed to
// materialize are skipped. docPath is the document's own mirror path,
// used to compute relative link targets.
func RenderDocument(m *memos.Memo, resources []ResolvedResource, docPath string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(RewriteTags(m.Content), "\n"))

	var images, others []ResolvedResource
	for _, r := range resources {
		if r.LocalPath == "" {
			continue
		}
		if IsImage(r.Ref.Filename) {
			images = append(images, r)
		} else {
			others = append(others, r)
		}
	}

	if len(images) > 0 {
		b.WriteString("\n")
		for _, r := range images {
			fmt.Fprintf(&b, "\n![%s](%s)", r.Ref.Filename, RelativePath(docPath, r.LocalPath))
		}
	}

	if len(others) > 0 {
		b.WriteString("\n\n## Attachments\n")
		for _, r := range others {
			fmt.Fprintf(&b, "\n- [%s](%s)", r.Ref.Filename, RelativePath(docPath, r.LocalPath))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(metadataBlock(m))
	b.WriteString("\n")
	return b.String()
}

// metadataBlock renders the foldable callout appended to every document.
// Obsidian folds "[!note]-" by default; other renderers show it as a
// plain blockquote.
func metadataBlock(m *memos.Memo) string {
	var b strings.Builder
	b.WriteString("> [!note]- Memo\n")
	fmt.Fprintf(&b, "> created: %s\n", m.CreateTime)
	fmt.Fprintf(&b, "> updated: %s\n", m.UpdateTime)
	b.WriteString("> type: memo\n")

	tags := ExtractTags(m.Content)
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		seen[t] = true
	}
	for _, t := range m.Tags {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, "> tags: [%s]\n", strings.Join(tags, ", "))
	}

	fmt.Fprintf(&b, "> id: %s\n", m.Name)
	fmt.Fprintf(&b, "> visibility: %s", strings.ToLower(m.Visibility))
	return b.String()
}
