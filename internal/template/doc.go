// Package template models the parsed template document consumed by the
// lowering pass.
//
// The node set is closed: Tag, Block, Code, Text, Case, When, Conditional and
// Each. Every other kind the upstream parser may produce (comments, mixins,
// doctypes, filters, ...) is carried as *Unknown with its original type
// discriminant so the lowering pass can report it instead of dropping it.
//
// Trees arrive either as the parser's JSON AST (DecodeJSON) or in the compact
// msgpack form written by EncodeMsgpack.
package template
