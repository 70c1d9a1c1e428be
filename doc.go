// Package input filters request parameters into typed, validated values.
//
// Raw request values are never used directly. A handler asks for a value
// through a reader, chooses how an absent value is treated and which filter
// converts it. Rejected values come back as null and leave an error, an id
// with details, in the error collection of their source. The handler
// inspects the errors once all values are read.
//
// # Quick Start
//
//	func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
//	    req, err := input.FromHTTP(r)
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//
//	    email, _ := req.ReadParam("email").Required().AsMailAddress()
//	    age, _ := req.ReadParam("age").AsInt(limit.Between(18, 120))
//	    plan, _ := req.ReadParam("plan").DefaultingTo("free").IfIsOneOf([]string{"free", "pro"})
//	    pw, _ := req.ReadParam("password").Required().AsPassword(nil)
//
//	    if err := req.Err(); err != nil {
//	        // 422 with the errors per source
//	    }
//	}
//
// # Readers
//
// ReadParam returns a reader in the active state. Required and DefaultingTo
// decide what happens when the value is null: Required records FIELD_EMPTY
// (or a given id) and DefaultingTo returns the default without filtering.
// Only one of them can be applied. An empty string is a present value.
//
// Reading operations return the typed value and whether there is one:
// AsInt, AsFloat, AsFixedPoint, AsBool, AsString, AsText, AsArray, AsJSON,
// AsSecret, AsPassword, AsMailAddress, AsHTTPURI, AsExistingHTTPURI, AsDate,
// AsDay, AsWeek, AsMonth, AsDatespan, IfIsOneOf, IfMatches, IfIsIPAddress,
// WithPredicate and Unsecure. Custom filters plug in with reader.WithFilter
// and reader.WithCallable.
//
// # Sources
//
// A request has five sources with separate error collections: param,
// header, cookie, path and body. Each is read with its own methods, e.g.
// ReadHeader or PathErrors, or by name through Read and Validate.
//
// # Structs
//
// The broker package fills structs from declarative field descriptors and
// an explicit registry of filters:
//
//	reg := broker.NewRegistry()
//	fields := []broker.Binding[Signup]{
//	    broker.Bind(reg, broker.Field{Param: "email", Filter: "mail", Required: true},
//	        func(s *Signup, v string) { s.Email = v }),
//	}
//	err := broker.Procure(ctx, reg, req, &s, fields...)
//
// # Messages
//
// The errmsg package renders error ids as localized messages, with English
// and German templates built in.
package input
