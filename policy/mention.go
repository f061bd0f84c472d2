package policy

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"notify-lab/domain"
)

// cjkScripts have no word delimiter conventions, so their mention keys
// are matched without boundary anchors.
var cjkScripts = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
}

func isCJK(key string) bool {
	script := whatlanggo.DetectScript(key)
	if script == nil {
		return false
	}
	for _, s := range cjkScripts {
		if script == s {
			return true
		}
	}
	return false
}

// compileMentionKey builds the matcher for one key. Word boundaries are
// expressed as non-word characters or string edges because keys usually
// start with '@', which \b does not anchor against.
func compileMentionKey(key domain.MentionKey) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(key.Key)
	pattern := `(?:^|\W)` + escaped + `(?:$|\W)`
	if isCJK(key.Key) {
		pattern = escaped
	}
	if !key.CaseSensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.Compile(pattern)
}

// mentionableText gathers every text surface of a post that counts for
// explicit mention matching: the body plus all attachment text fields.
func mentionableText(post domain.Post) string {
	parts := []string{post.Message}
	for _, a := range post.Attachments() {
		parts = append(parts, a.Pretext, a.Title, a.Text, a.Footer)
		for _, f := range a.Fields {
			parts = append(parts, f.Title, f.Value)
		}
	}
	return strings.Join(parts, "\n")
}

// MatchesExplicitMention reports whether any of the user's mention keys
// occurs in the post. Channel-wide tokens are excluded when the
// membership ignores channel mentions. Keys that fail to compile are
// skipped rather than failing the whole evaluation.
func MatchesExplicitMention(post domain.Post, keys []domain.MentionKey, ignoreChannelMentions bool) bool {
	text := mentionableText(post)
	for _, key := range keys {
		if key.Key == "" {
			continue
		}
		if ignoreChannelMentions && isChannelWide(key.Key) {
			continue
		}
		re, err := compileMentionKey(key)
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func isChannelWide(key string) bool {
	for _, token := range domain.ChannelWideMentions {
		if key == token {
			return true
		}
	}
	return false
}
