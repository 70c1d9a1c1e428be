package errmsg

import (
	"golang.org/x/text/language"
)

// Negotiate picks the best available locale for an Accept-Language header.
// Headers that match no available locale yield the default locale.
func (c *Catalog) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return c.defaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLocale
	}

	matcher, locales := c.negotiation()
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLocale
	}
	return locales[idx]
}

func (c *Catalog) negotiation() (language.Matcher, []string) {
	c.matcherOnce.Do(func() {
		// The default locale goes first so the matcher falls back to it.
		locales := []string{c.defaultLocale}
		for _, l := range c.Locales() {
			if l != c.defaultLocale {
				locales = append(locales, l)
			}
		}

		tags := make([]language.Tag, len(locales))
		for i, l := range locales {
			tags[i] = language.Make(l)
		}

		c.locales = locales
		c.matcher = language.NewMatcher(tags)
	})
	return c.matcher, c.locales
}
