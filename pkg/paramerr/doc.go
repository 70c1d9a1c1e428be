// Package paramerr models validation failures of request parameters as data.
//
// Filters never return Go errors for bad input. Instead they report an [Error]:
// an id from a fixed vocabulary (FIELD_EMPTY, DATE_INVALID, JSON_SYNTAX_ERROR, ...)
// plus details such as the violated border. A filter reports its failures as an
// [Errors] set keyed by id; readers copy them into the request-scoped [Collection]
// keyed by parameter name.
//
// # Rendering messages
//
// Details fill {key} placeholders of a message template:
//
//	err := paramerr.New(paramerr.StringTooLong, map[string]any{"maxLength": 3})
//	err.FillMessage("Use at most {maxLength} characters.")
//	// "Use at most 3 characters."
//
// # Inspecting a request
//
//	errs := req.ParamErrors()
//	if errs.Exist() {
//		for param, list := range errs.All() {
//			log.Info("invalid param", "param", param, "errors", list)
//		}
//	}
package paramerr
