// Package lower turns a parsed template tree into the output AST of a
// component: the render tree plus statements hoisted to the top of the
// generated module.
//
// NodePass is the dispatcher. It looks at one template node, checks the
// structural rules (denied document elements, script dialects, top-level-only
// scripts), delegates to a specialized pass and assembles the result. All
// passes of one compile share a Context which owns the hoisted statements and
// the diagnostic reporter.
//
// Lowering never stops early. A fatal diagnostic withholds the output of the
// node it is attached to and the walk carries on with the node's siblings;
// whoever assembles the program decides what a fatal diagnostic means for it.
//
// A Context belongs to a single compile. Independent compiles may run in
// parallel as long as each has its own Context.
package lower
