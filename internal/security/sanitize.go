package security

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	TitleMinLength       = 3
	TitleMaxLength       = 200
	DescriptionMaxLength = 1000
	ProjectNameMinLength = 2
	ProjectNameMaxLength = 100
	TagMaxLength         = 50
	MaxTags              = 10
	SearchQueryMaxLength = 200
)

var (
	ErrTitleEmpty          = errors.New("Title cannot be empty")
	ErrTitleTooShort       = errors.New("Title must be at least 3 characters")
	ErrTitleTooLong        = errors.New("Title must be less than 200 characters")
	ErrDescriptionTooLong  = errors.New("Description must be less than 1000 characters")
	ErrProjectNameEmpty    = errors.New("Project name cannot be empty")
	ErrProjectNameTooShort = errors.New("Project name must be at least 2 characters")
	ErrProjectNameTooLong  = errors.New("Project name must be less than 100 characters")
)

// strictPolicy allows no elements at all; text content is kept.
var strictPolicy = bluemonday.StrictPolicy()

// maxStripPasses bounds nested entity decoding, e.g. &amp;lt;b&amp;gt;.
const maxStripPasses = 16

// StripMarkup removes every HTML element and returns plain text.
// Entities are decoded and the text stripped again until nothing changes,
// so encoded markup never comes back as a live tag and StripMarkup(StripMarkup(s)) == StripMarkup(s).
func StripMarkup(input string) string {
	s := input
	for i := 0; i < maxStripPasses; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	// still changing: keep the escaped form, it carries no tags
	return strictPolicy.Sanitize(s)
}

// SanitizeText strips markup, trims whitespace and truncates to maxLength runes.
func SanitizeText(input string, maxLength int) string {
	return truncate(strings.TrimSpace(StripMarkup(input)), maxLength)
}

func truncate(s string, maxLength int) string {
	if maxLength < 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	r := []rune(s)
	return string(r[:maxLength])
}

// cleanLength is the rune length of input once markup and surrounding whitespace are gone.
func cleanLength(input string) int {
	return utf8.RuneCountInString(strings.TrimSpace(StripMarkup(input)))
}

func ValidateTaskTitle(title string) error {
	n := cleanLength(title)
	switch {
	case n == 0:
		return ErrTitleEmpty
	case n < TitleMinLength:
		return ErrTitleTooShort
	case n > TitleMaxLength:
		return ErrTitleTooLong
	}
	return nil
}

func ValidateDescription(description string) error {
	if cleanLength(description) > DescriptionMaxLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func ValidateProjectName(name string) error {
	n := cleanLength(name)
	switch {
	case n == 0:
		return ErrProjectNameEmpty
	case n < ProjectNameMinLength:
		return ErrProjectNameTooShort
	case n > ProjectNameMaxLength:
		return ErrProjectNameTooLong
	}
	return nil
}

// SanitizeTags cleans each tag, drops empty and repeated entries and keeps at most MaxTags.
func SanitizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		clean := SanitizeText(tag, TagMaxLength)
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}
