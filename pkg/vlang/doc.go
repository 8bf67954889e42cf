// Package vlang is the lexical and semantic utility core for Verilog,
// SystemVerilog, and Verilog-AMS source text: keyword/directive/gate-primitive
// classification parameterized by language standard, numeric literal
// interpretation, comment stripping, and bus expression expansion.
//
// The package is synchronous and does no I/O. The only process-wide mutable
// state is the active language standard behind the package-level
// convenience functions (LanguageStandard, IsKeyword, ...); callers that
// need re-entrancy should construct their own *Language instead.
package vlang
