// Package loader implements the two-pass contract-type loading engine.
//
// Pass 1 reserves every declared name in the store, rejecting duplicates
// per entry. Pass 2 populates each surviving entry in declaration order,
// rolling the entry back out of the store if its population fails. The
// batch itself never fails: every outcome is captured per entry in the
// returned Report, and the store ends up holding exactly the entries whose
// name was unique and whose population succeeded.
//
// The two passes exist so population code can resolve references to
// sibling contract types by name before those siblings have themselves
// been populated. Reservation makes every declared name visible up front;
// no dependency-ordered load is required. Note the flip side: a forward
// reference resolves to a reserved but not-yet-populated sibling, since
// pass 2 follows declaration order.
package loader
