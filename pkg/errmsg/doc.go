// Package errmsg renders parameter errors as human readable messages.
//
// A Catalog maps error ids to message templates per locale. Templates use
// {key} placeholders which are filled from the error details:
//
//	VALUE_TOO_GREAT: "The value must not be greater than {maxNumber}."
//
// The catalog ships English and German templates for every built-in error id.
// Additional locales or overrides are loaded from YAML files, one file per
// locale named after it:
//
//	messages/en.yaml
//	messages/fr.yml
//
// Usage:
//
//	cat, err := errmsg.New(
//	    errmsg.WithDefaultLocale("en"),
//	    errmsg.WithYAMLDir(os.DirFS("./messages")),
//	)
//	locale := cat.Negotiate(r.Header.Get("Accept-Language"))
//	msg, err := cat.MessageFor(paramErr, locale)
//
// Lookups fall back to the default locale when the requested locale has no
// template for an id.
package errmsg
