// Package binding populates typed Go values from flat, prefix-addressed
// input (see core/request) without failing fast.
//
// # Fault Isolation
//
// Every field is bound inside a property scope. An error returned or a panic
// raised while binding one field is turned into a Problem and binding moves
// on to the next field. A bind therefore always completes and yields a
// possibly partial value together with the ordered list of problems.
//
// # Naming
//
// A field name is mapped to external keys by an ordered Naming chain. The
// defaults try the name as-is, then with underscores replaced by dashes,
// then wrapped in brackets. The first candidate key present in the input
// wins. A NamingRegistry assembles chains; contexts keep the snapshot they
// were created with.
//
// # Nested Binding
//
// Nested structs are bound against a prefix-scoped view of the input
// ("address." for an Address field, "items[0]." for the first element of
// Items). BindPrefixed first probes whether any key carries the prefix and
// skips the recursive bind when none does, which is how optional children
// and greedy collection population stay cheap.
//
// # Usage
//
//	data := request.NewMapData("form", map[string]any{
//	    "first-name": "Ada",
//	    "age":        "not a number",
//	})
//	person, problems, err := binding.Bind[Person](data, logger)
//	// person.FirstName == "Ada"; one problem for "age".
package binding
