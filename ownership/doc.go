// Package ownership provides lifecycle accounting for the runtime's owned
// value types.
//
// The MinnieML compiler proves ownership statically and emits exactly one
// Release per owned value, so the runtime performs no checks of its own.
// What this package adds is observability: an optional Ledger that records
// every create, release and duplicate so tests (and debugging sessions) can
// verify the contract the compiler is supposed to uphold.
//
// # Ownership Lifecycle
//
// The runtime defines three lifecycle operations:
//
//	create    - a constructor allocates fresh owned storage
//	release   - the single owner reclaims the storage
//	duplicate - a deep copy produces a second, independent owner
//
// # Ledger
//
// The Ledger maps integer handles to live entries:
//
//	ledger := ownership.NewLedger()
//	ownership.Track(ledger)
//	defer ownership.Untrack()
//
//	s := value.FromString("hello")
//	s.Release()
//
//	ledger.Live() // 0
//
// # Observers
//
// Register observers to watch lifecycle events:
//
//	ledger.Subscribe(obs)
//
// A release of an already-released handle is reported as EventDoubleRelease
// rather than crashing; in the original runtime that is undefined behavior,
// and the event is how tests catch a compiler that violates the contract.
//
// # Overhead
//
// Tracking is off by default. Untracked values carry handle 0 and every hook
// is a nil check.
package ownership
