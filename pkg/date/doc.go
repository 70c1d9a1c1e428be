// Package date provides the date and date span types request filters produce.
//
// A Date is a point in time; Day, Week, Month and Custom are spans of whole
// days implementing Datespan. All values are in UTC. Parse functions fail with
// an error wrapping ErrInvalid.
//
//	d, _ := date.ParseDay("2024-02-29")
//	w, _ := date.ParseWeek("2024-W09")
//	w.Contains(d.Start()) // true
package date
