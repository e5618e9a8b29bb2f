// Package repl implements an interactive generator expression explorer.
//
// Lines typed in parse mode are parsed and shown in the current view. Esc
// switches to command mode, where "view", "query", "help", "clear" and "quit"
// are available. Typing after "$<" offers fuzzy completion of well-known
// expression identifiers.
package repl
