// Package i18n provides a locale concern: per-language message catalogs
// resolvable through csar, with matcher-driven language fallback.
package i18n

import (
	"context"
	"errors"
	"reflect"

	"golang.org/x/text/language"

	"github.com/globalmentor/csar"
)

// Catalog pairs a language with its message map.
type Catalog struct {
	Tag      language.Tag
	Messages map[string]string
}

// Bundle is an immutable locale concern holding one catalog per language.
// The first catalog's language is the fallback when no supported language
// matches a caller's preference. Bundles register under their own concrete
// type.
type Bundle struct {
	matcher  language.Matcher
	tags     []language.Tag
	messages map[language.Tag]map[string]string
}

// ErrNoCatalogs indicates bundle construction without any catalog.
var ErrNoCatalogs = errors.New("i18n: at least one catalog is required")

// NewBundle builds a bundle from the given catalogs. Message maps are
// copied; catalogs sharing a language are merged with later entries winning.
func NewBundle(catalogs ...Catalog) (*Bundle, error) {
	if len(catalogs) == 0 {
		return nil, ErrNoCatalogs
	}
	tags := make([]language.Tag, 0, len(catalogs))
	messages := make(map[language.Tag]map[string]string, len(catalogs))
	for _, catalog := range catalogs {
		merged, ok := messages[catalog.Tag]
		if !ok {
			merged = make(map[string]string, len(catalog.Messages))
			messages[catalog.Tag] = merged
			tags = append(tags, catalog.Tag)
		}
		for key, message := range catalog.Messages {
			merged[key] = message
		}
	}
	return &Bundle{
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		messages: messages,
	}, nil
}

// ConcernType implements csar.Concern.
func (b *Bundle) ConcernType() reflect.Type {
	return csar.TypeOf[*Bundle]()
}

// Localize returns the message for key in the best supported match for the
// preferred languages. With no preference, the bundle's first language is
// used.
func (b *Bundle) Localize(key string, preferred ...language.Tag) (string, bool) {
	_, index, _ := b.matcher.Match(preferred...)
	message, ok := b.messages[b.tags[index]][key]
	return message, ok
}

// Message is like Localize but returns the key itself when no message is
// defined, which keeps call sites total.
func (b *Bundle) Message(key string, preferred ...language.Tag) string {
	if message, ok := b.Localize(key, preferred...); ok {
		return message
	}
	return key
}

// Languages returns the bundle's supported languages in catalog order.
func (b *Bundle) Languages() []language.Tag {
	tags := make([]language.Tag, len(b.tags))
	copy(tags, b.tags)
	return tags
}

// Of resolves the nearest Bundle for the given scope.
func Of(scope *csar.Scope) (*Bundle, error) {
	return csar.ConcernOf[*Bundle](scope)
}

// FromContext resolves the nearest Bundle carried by ctx.
func FromContext(ctx context.Context) (*Bundle, error) {
	return csar.ConcernFromContext[*Bundle](ctx)
}
