package dispatch

import (
	"regexp"
	"strings"
)

// Notification bodies show plain text; this strips the markdown
// constructs users actually type, it is not a full renderer.
var (
	codeFenceRe   = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe  = regexp.MustCompile("`([^`]*)`")
	imageRe       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisRe    = regexp.MustCompile(`(\*{1,3}|_{1,3}|~~)(\S(?:.*?\S)?)(\*{1,3}|_{1,3}|~~)`)
	headingRe     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquoteRe  = regexp.MustCompile(`(?m)^>\s?`)
	spaceCollapse = regexp.MustCompile(`[ \t]+`)
)

func stripMarkdown(s string) string {
	s = codeFenceRe.ReplaceAllString(s, "")
	s = inlineCodeRe.ReplaceAllString(s, "$1")
	s = imageRe.ReplaceAllString(s, "$1")
	s = linkRe.ReplaceAllString(s, "$1")
	s = emphasisRe.ReplaceAllString(s, "$2")
	s = headingRe.ReplaceAllString(s, "")
	s = blockquoteRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceCollapse.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
