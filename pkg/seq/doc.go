/*
Package seq provides lazy, single-pass, pull-based iterators.

An Iterator produces one element per call to Next and reports exhaustion with
option.None. Adapters (Map, Filter, Chain, Enumerate) wrap an upstream iterator and do
no work until they are pulled. Every iterator in this package is fused: after the first
None it keeps returning None, so a traversal can be walked to completion exactly once.
Restarting requires a new iterator over the source.

Sources mirror the three ways of traversing a sequence:

  - Values iterates over a private copy of a slice;
  - Refs reads through a shared borrow, leaving the source untouched;
  - IterMut yields pointers through an exclusive borrow for in-place mutation;
  - IntoIter moves the slice out of its cell and consumes it.

All and All2 bridge iterators to range-over-func loops.
*/
package seq
