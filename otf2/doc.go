// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otf2 reads and writes OTF2 traces: self-describing archives of
// timestamped events emitted by many parallel "locations" (threads,
// processes, GPU streams) during the run of a parallel application, together
// with global definition tables that give meaning to the integer identifiers
// embedded in events.
//
// A trace is opened or created with Open/Create, which returns an *Archive.
// Producers obtain a per-location *Writer from the archive and call Write
// (or one of its Write<Kind> helpers) once per event. Consumers obtain a *Reader per location,
// register callbacks for the event and definition kinds they care about, and
// either drain a single reader or hand a set of them to a GlobalMerger, which
// interleaves their events in timestamp order.
package otf2 // import "github.com/score-p/go-otf2/otf2"
