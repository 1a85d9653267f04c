/*
Package domain contains the core records and contracts for the Pipework engine.

It defines the three data records (Action, Outcome, LedgerEntry), the Pipe
contract, and the lifecycle hooks. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Action: An immutable description of an attempt (name, payload, actor).
  - Outcome: An immutable record of what actually happened.
  - LedgerEntry: The authoritative binding of one Action to its Outcome.
  - Pipe: An external rule that claims an Action or defers to the next one.
*/
package domain
