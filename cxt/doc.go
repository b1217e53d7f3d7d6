// Package cxt reads and writes formal contexts in the Burmeister cross-table
// format used by most FCA tools:
//
//	B
//	<name, may be empty>
//	<number of objects>
//	<number of attributes>
//	<blank line>
//	<one object label per line>
//	<one attribute label per line>
//	<one row per object over {X, .}>
//
// Parse reports the first problem as a *ParseError carrying the 1-based line
// number; it wraps one of the sentinel errors below and may carry a hint
// (errors.GetAllHints) suggesting the fix. Rows accept lower-case x. Trailing
// blank lines and carriage returns are ignored.
package cxt
