// Package locale picks the display language of a request.
package locale

import (
	"context"

	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
)

// Lang is a supported display language.
type Lang string

// Supported languages. Spanish is the default.
const (
	Spanish Lang = "es"
	English Lang = "en"
)

// MetadataKey is the gRPC metadata key read by FromIncomingContext.
const MetadataKey = "accept-language"

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

// Match returns the best supported language for an Accept-Language value.
func Match(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Spanish
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Spanish
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Spanish
	}
	if index == 1 {
		return English
	}
	return Spanish
}

// FromIncomingContext matches the accept-language metadata of a request.
func FromIncomingContext(ctx context.Context) Lang {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return Spanish
	}
	values := md.Get(MetadataKey)
	if len(values) == 0 {
		return Spanish
	}
	return Match(values[0])
}

// Pick returns the text in lang, falling back to Spanish when the English
// text is empty.
func (l Lang) Pick(es, en string) string {
	if l == English && en != "" {
		return en
	}
	return es
}
