// Package broker fills structs from request parameters using declarative
// field descriptors and an explicit registry of filter factories.
//
// A Field describes where a value comes from and how it is filtered. A
// Binding ties a Field to a setter on the target type. Bindings are built
// once, usually at package level, and reused for every request:
//
//	var signupFields = []broker.Binding[Signup]{
//	    broker.Bind(reg, broker.Field{Param: "email", Filter: "mail", Required: true},
//	        func(s *Signup, v string) { s.Email = v }),
//	    broker.Bind(reg, broker.Field{Param: "age", Filter: "int", MinNumber: broker.Num(18)},
//	        func(s *Signup, v int) { s.Age = v }),
//	}
//
//	var s Signup
//	if err := broker.Procure(ctx, reg, req, &s, signupFields...); err != nil {
//	    return err // misconfiguration
//	}
//	if req.ParamErrors().Exist() {
//	    // render errors
//	}
//
// Setters are only called for non-null values. Parameter errors are recorded
// by the source, Procure only fails for configuration errors.
package broker
