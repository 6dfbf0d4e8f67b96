package mirror

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haierkeys/memos-mirror/internal/memos"
)

func TestRewriteTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"closed tag", "note #work# done", "note #work done"},
		{"bare tag untouched", "note #work done", "note #work done"},
		{"multiple tags", "#a# and #b# and #c", "#a and #b and #c"},
		{"no tags", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteTags(tt.in))
		})
	}
}

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("#work# then #home then #work again")
	assert.Equal(t, []string{"work", "home"}, tags)

	assert.Empty(t, ExtractTags("no tags here"))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("photo.jpg"))
	assert.True(t, IsImage("PHOTO.JPEG"))
	assert.True(t, IsImage("x.webp"))
	assert.False(t, IsImage("doc.pdf"))
	assert.False(t, IsImage("noext"))
}

func TestRenderDocument(t *testing.T) {
	m := &memos.Memo{
		Name:       "memos/101",
		Content:    "Meeting notes #work#",
		Visibility: "PRIVATE",
		CreateTime: "2024-03-15T10:30:00Z",
		UpdateTime: "2024-03-16T08:00:00Z",
	}
	resources := []ResolvedResource{
		{Ref: memos.Resource{Name: "resources/r1", Filename: "photo.jpg"}, LocalPath: "memos/2024/03/resources/r1_photo.jpg"},
		{Ref: memos.Resource{Name: "resources/r2", Filename: "agenda.pdf"}, LocalPath: "memos/2024/03/resources/r2_agenda.pdf"},
		{Ref: memos.Resource{Name: "resources/r3", Filename: "lost.png"}, LocalPath: ""},
	}

	doc := RenderDocument(m, resources, "memos/2024/03/Meeting notes #work (2024-03-15 10-30).md")

	assert.True(t, strings.HasPrefix(doc, "Meeting notes #work\n"), "body comes first, tags rewritten")
	assert.Contains(t, doc, "![photo.jpg](resources/r1_photo.jpg)")
	assert.Contains(t, doc, "## Attachments")
	assert.Contains(t, doc, "- [agenda.pdf](resources/r2_agenda.pdf)")
	assert.NotContains(t, doc, "lost.png", "failed resources leave no link")

	// Metadata callout comes last, fields in fixed order.
	idx := strings.Index(doc, "> [!note]- Memo")
	require.GreaterOrEqual(t, idx, 0)
	meta := doc[idx:]
	lines := strings.Split(strings.TrimRight(meta, "\n"), "\n")
	assert.Equal(t, []string{
		"> [!note]- Memo",
		"> created: 2024-03-15T10:30:00Z",
		"> updated: 2024-03-16T08:00:00Z",
		"> type: memo",
		"> tags: [work]",
		"> id: memos/101",
		"> visibility: private",
	}, lines)
}

func TestRenderDocument_NoResourcesNoTags(t *testing.T) {
	m := &memos.Memo{
		Name:       "memos/7",
		Content:    "just text",
		Visibility: "PUBLIC",
		CreateTime: "2024-01-01T00:00:00Z",
		UpdateTime: "2024-01-01T00:00:00Z",
	}
	doc := RenderDocument(m, nil, "memos/2024/01/just text (2024-01-01 00-00).md")

	assert.NotContains(t, doc, "## Attachments")
	assert.NotContains(t, doc, "> tags:", "tags line omitted when empty")
	assert.Contains(t, doc, "> visibility: public")
	assert.True(t, strings.HasSuffix(doc, "\n"))
}

func TestRenderDocument_SuppliedTagsMerged(t *testing.T) {
	m := &memos.Memo{
		Name:       "memos/9",
		Content:    "#inline# note",
		Visibility: "PRIVATE",
		Tags:       []string{"supplied", "inline"},
	}
	doc := RenderDocument(m, nil, "memos/2024/01/x.md")
	assert.Contains(t, doc, "> tags: [inline, supplied]", "extracted first, duplicates dropped")
}
