/*
Package ports defines the driven ports (interfaces) for the nfa checker.

These interfaces decouple the automaton and the batch runner from external
implementations, allowing the same evaluation loop to read from files,
standard input or memory, report as text or JSON, and cache verdicts in
memory or Redis.

# Key Interfaces

  - LineSource: A named input that yields lines (e.g., a file or stdin).
  - Reporter: Emits per-line verdicts and per-source summaries.
  - VerdictCache: Remembers acceptance results keyed by automaton and input.
*/
package ports
