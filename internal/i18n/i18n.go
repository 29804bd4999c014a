// Package i18n holds the table prompts in every supported language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.Korean,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag maps a language setting such as "ko" or "en-US" to the closest
// supported tag, falling back to English.
func ResolveTag(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}

	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}

	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}
