// Package preprocess cleans review text and enforces the classifier's input
// length policy before inference.
package preprocess

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/spacesedan/reviewsense/internal/apperrors"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<.*?>`)
	// Keep punctuation that carries sentiment, drop the rest.
	specialCharPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?']`)
)

// Preprocessor cleans text and applies the token-length policy against a
// fixed limit supplied by the classifier. It holds no mutable state.
type Preprocessor struct {
	maxTokens int
}

func New(maxTokens int) *Preprocessor {
	return &Preprocessor{maxTokens: maxTokens}
}

// Prepare cleans the text and enforces the token limit. Over-limit text is
// either truncated at a token boundary (truncate=true) or rejected with a
// text_too_long error. Empty or whitespace-only text after cleaning is
// rejected with an invalid_input error.
func (p *Preprocessor) Prepare(text string, truncate bool) (string, bool, error) {
	cleaned := Clean(text)
	if cleaned == "" {
		return "", false, apperrors.InvalidInput("review text is empty or contains no analyzable content")
	}

	tokens := strings.Fields(cleaned)
	if len(tokens) <= p.maxTokens {
		return cleaned, false, nil
	}

	if !truncate {
		return "", false, apperrors.TextTooLong(len(tokens), p.maxTokens)
	}
	return strings.Join(tokens[:p.maxTokens], " "), true, nil
}

// Clean normalizes unicode, strips markup, links and control characters, and
// collapses whitespace. Pure function of its input.
func Clean(text string) string {
	text = norm.NFKC.String(text)
	text = stripControlRunes(text)

	// Unwrap markdown links first so their text survives URL removal.
	text = markdownLinkPattern.ReplaceAllString(text, "$1")
	text = urlPattern.ReplaceAllString(text, "")

	// Render remaining markdown to HTML, then drop every tag. What is left is
	// the plain text for both markdown and raw HTML input.
	text = string(blackfriday.Run([]byte(text), blackfriday.WithNoExtensions()))
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	text = strings.ToLower(text)
	text = specialCharPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}

func stripControlRunes(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
