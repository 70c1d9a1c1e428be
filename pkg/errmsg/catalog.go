package errmsg

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/input/pkg/paramerr"
)

//go:embed messages/*.yaml
var builtin embed.FS

// Catalog holds message templates keyed by locale and error id.
// A Catalog is immutable after New and safe for concurrent use.
type Catalog struct {
	messages      map[string]map[string]string
	defaultLocale string
	skipBuiltin   bool

	matcherOnce sync.Once
	matcher     language.Matcher
	locales     []string
}

// Option configures a Catalog.
type Option func(*Catalog) error

// New creates a catalog with the built-in English and German templates
// and applies the given options on top of them.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:      make(map[string]map[string]string),
		defaultLocale: "en",
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if !c.skipBuiltin {
		sub, err := fs.Sub(builtin, "messages")
		if err != nil {
			return nil, err
		}
		// Built-ins never override templates supplied through options.
		if err := loadDir(c, sub, false); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithDefaultLocale sets the locale used when a lookup or negotiation fails.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) error {
		tag, err := canonical(locale)
		if err != nil {
			return err
		}
		c.defaultLocale = tag
		return nil
	}
}

// WithMessages adds templates for a locale. Existing templates for the same
// ids are replaced.
func WithMessages(locale string, messages map[string]string) Option {
	return func(c *Catalog) error {
		tag, err := canonical(locale)
		if err != nil {
			return err
		}
		c.add(tag, messages, true)
		return nil
	}
}

// WithoutBuiltin disables the shipped English and German templates.
func WithoutBuiltin() Option {
	return func(c *Catalog) error {
		c.skipBuiltin = true
		return nil
	}
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns all locales with at least one template, sorted.
func (c *Catalog) Locales() []string {
	return slices.Sorted(maps.Keys(c.messages))
}

// Template returns the raw template for id in locale, falling back to the
// default locale.
func (c *Catalog) Template(id, locale string) (string, error) {
	if tag, err := canonical(locale); err == nil {
		if msg, ok := c.messages[tag][id]; ok {
			return msg, nil
		}
		if base := baseOf(tag); base != tag {
			if msg, ok := c.messages[base][id]; ok {
				return msg, nil
			}
		}
	}
	if msg, ok := c.messages[c.defaultLocale][id]; ok {
		return msg, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownID, id)
}

// MessageFor renders err in locale with its details filled in.
func (c *Catalog) MessageFor(err paramerr.Error, locale string) (string, error) {
	tpl, lookupErr := c.Template(err.ID(), locale)
	if lookupErr != nil {
		return "", lookupErr
	}
	return err.FillMessage(tpl), nil
}

// Render converts every error of the collection into messages grouped by
// parameter name. Errors without a template are rendered by their id.
func (c *Catalog) Render(errs *paramerr.Collection, locale string) map[string][]string {
	out := make(map[string][]string, errs.Count())
	for param, list := range errs.All() {
		msgs := make([]string, 0, len(list))
		for _, e := range list {
			msg, err := c.MessageFor(e, locale)
			if err != nil {
				msg = e.ID()
			}
			msgs = append(msgs, msg)
		}
		out[param] = msgs
	}
	return out
}

func (c *Catalog) add(locale string, messages map[string]string, override bool) {
	bucket, ok := c.messages[locale]
	if !ok {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for id, msg := range messages {
		if _, exists := bucket[id]; exists && !override {
			continue
		}
		bucket[id] = msg
	}
}

func canonical(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return tag.String(), nil
}

func baseOf(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	base, _ := tag.Base()
	return base.String()
}
