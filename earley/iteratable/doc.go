/*
Package iteratable implements a generic insertion-ordered set, used by
package earley to represent chart columns.

A chart column is filled by repeated insertion while it is being iterated:
predicting and completing a state item can add new items to the very
column currently being scanned. Set supports this by tracking, alongside
membership, a cursor that a caller can drive forward across insertions
made since the cursor last advanced — the same "process until nothing new
shows up" idiom the Earley worklist algorithm depends on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package iteratable
