// Package ir provides the intermediate representation for generic
// structured documents.
//
// A document (whether decoded from YAML or JSON, or created
// programmatically) is represented as a tree of ir.Node values.  The IR
// is a simple recursive tagged union over null, bool, number, string,
// array and object values, so type narrowing happens in exactly one
// place when converting into and out of concrete record types.
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//
// Nodes can be compared with Compare or Equal, and converted to and
// from plain Go values (the any forms used by YAML and JSON codecs)
// with FromAny and ToAny.
//
// Node structures are not thread-safe; clone nodes if they are shared
// across goroutines that mutate them.
package ir
