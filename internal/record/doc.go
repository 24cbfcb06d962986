// Package record defines the structured log record shown by jlv and the
// parser that produces one record per input line.
//
// A Record is an ordered mapping of keys to dynamically typed JSON values.
// Key order follows the input document, so the detail pane and the context
// pairs render fields in the order the producer wrote them. Records are
// immutable: the package exports accessors only.
//
// Parsing is built on fastjson. Values are copied out of the parser arena,
// which lets a single Parser be reused for every line of a stream while the
// produced records live for the whole session.
//
// Numbers keep their literal text. Float and Int accessors convert on demand,
// so large integers such as request IDs survive untouched.
package record
