// Package errors provides structured, actionable error messages.
//
// Each error has a unique code (e.g., "E001") that maps to a category,
// a short message and a detailed explanation:
//
//   - render: HTML serialization failures
//   - diff: listener lookup and dispatch failures
//   - protocol: binary frame and live connection failures
//   - config: vattr.json loading and validation
//   - publish: storing rendered output
//   - cli: command-line usage
//
// # Usage
//
//	err := errors.New("E061").
//	    WithLocation("vattr.json", 4, 12).
//	    WithSuggestion("Check that vattr.json is valid JSON")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E061: Invalid configuration file
//	//
//	//   vattr.json:4:12
//	//
//	//      2 │   "serve": {
//	//      3 │     "host": "localhost",
//	//   →  4 │     "port": "eight",
//	//        │            ^
//	//      5 │   }
//	//
//	//   Hint: Check that vattr.json is valid JSON
//
// Is and As are re-exported so callers need not import both packages.
package errors
