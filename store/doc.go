// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the single owner of the site's mutable state: candidates,
bosses, FAQ, ticker messages, site and live configuration, and the casting
flag.

# Construction

A Store is built once from seed data and passed to every consumer:

	data, _ := seed.Default(time.Now())
	s, err := store.New(data)

Candidates without stats get random stats at this point only. Ids for new
entities come from an IDSource (UUIDs by default, SequenceIDs in tests):

	s, err := store.New(data, store.WithIDs(&store.SequenceIDs{}))

# Updates

Updates take a patch from the models package and replace only the fields
that are set. An id that matches nothing is a no-op, never an error and
never an insert.

Candidate status only moves forward: PRESENT to ELIMINATED or LEFT.
Anything else returns ErrInvalidTransition.
*/
package store
