package mirror

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/haierkeys/memos-mirror/internal/memos"
	"github.com/haierkeys/memos-mirror/pkg/fileurl"
)

// Pure path and name derivation. No I/O here.

const previewLength = 50

// Filesystem-reserved characters replaced in derived file names.
var reservedChars = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DatePath returns the year/month partition for a creation timestamp,
// e.g. "2024/03".
func DatePath(t time.Time) string {
	return t.Format("2006/01")
}

// SanitizeFilename makes a string safe for use as a file name:
// reserved characters become underscores and whitespace runs collapse
// to a single space.
func SanitizeFilename(s string) string {
	s = reservedChars.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// DocFilename derives the document file name for a memo: a sanitized
// content preview (tags already rewritten) plus a minute-precision
// timestamp suffix, so identical previews at different times never
// collide. Empty content falls back to the memo id.
func DocFilename(content string, name string, t time.Time) string {
	var preview string
	if strings.TrimSpace(content) != "" {
		preview = firstRunes(RewriteTags(content), previewLength)
	} else {
		preview = strings.TrimPrefix(name, memos.NamePrefix)
	}
	return fmt.Sprintf("%s (%s).md", SanitizeFilename(preview), t.Format("2006-01-02 15-04"))
}

// ResourceFilename derives the local file name for an attachment:
// "{shortId}_{sanitizedName}". Resource ids are unique, which makes the
// result unique without collision detection.
func ResourceFilename(r *memos.Resource) string {
	name := fileurl.GetFileNameOrRandom(r.Filename)
	return r.ShortID() + "_" + SanitizeFilename(name)
}

// RelativePath computes the link target from a document to another file
// in the mirror tree, resolvable from the document's own directory by
// any standard renderer.
func RelativePath(fromDoc string, to string) string {
	fromSegs := strings.Split(fromDoc, "/")
	fromDir := fromSegs[:len(fromSegs)-1]
	toSegs := strings.Split(to, "/")

	common := 0
	for common < len(fromDir) && common < len(toSegs) && fromDir[common] == toSegs[common] {
		common++
	}

	parts := make([]string, 0, len(fromDir)-common+len(toSegs)-common)
	for i := common; i < len(fromDir); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, toSegs[common:]...)
	return strings.Join(parts, "/")
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
