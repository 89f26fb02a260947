package backend

import (
	"regexp"
)

var BannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"asshole", "bastard", "bitch", "cunt",
	"porn", "porno", "nude", "nudes",
	"scam", "scammer", "phishing", "malware",
}

// ContentFilter screens free text that tenants send: request descriptions and
// review comments.
type ContentFilter struct {
	bannedWordRegexps   []*regexp.Regexp
	urlPattern          *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
}

func NewContentFilter() *ContentFilter {
	f := &ContentFilter{
		bannedWordRegexps: make([]*regexp.Regexp, 0, len(BannedWords)),
		urlPattern:        regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`),
		// RE2 has no backreferences, so runs are spelled out per character class.
		repeatedCharPattern: regexp.MustCompile(`(?i)(a{6,}|e{6,}|i{6,}|o{6,}|u{6,}|!{4,}|\?{4,}|\.{6,})`),
	}
	for _, word := range BannedWords {
		f.bannedWordRegexps = append(f.bannedWordRegexps, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return f
}

// Check reports whether text is acceptable and, if not, a reason code.
func (f *ContentFilter) Check(text string) (bool, string) {
	if text == "" {
		return true, ""
	}
	for _, re := range f.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_language"
		}
	}
	if f.urlPattern.MatchString(text) {
		return false, "url_not_allowed"
	}
	if f.repeatedCharPattern.MatchString(text) {
		return false, "spam_detected"
	}
	return true, ""
}

func (f *ContentFilter) RejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_language": "Your text contains inappropriate language.",
		"url_not_allowed":        "URLs and web links are not allowed.",
		"spam_detected":          "Your text appears to be spam.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your text does not meet our content guidelines."
}
