// Package sanitizer cleans free text read from requests.
//
// StripTags turns markup into plain text using a bluemonday strict policy.
// StripTagsExcept keeps an allow-list of elements. Both return text with
// entities decoded and never return markup that was hidden behind entities.
// StripSlashes undoes backslash escaping.
package sanitizer
