// Package collections wraps the gods containers in small typed APIs: an ordered
// key-value Map, a Set that suppresses duplicates and a double-ended Deque.
// Lookups that may miss return option.Option instead of a comma-ok pair.
package collections
