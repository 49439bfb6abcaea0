/*
Package codetable holds the mapping from Buckwalter transliteration symbols to
Arabic Unicode code points.

The Buckwalter table returned by [Default] is fixed: every consumer of this
module relies on its exact contents, so it behaves like a wire format rather
than like configuration. Clients needing a different alphabet may construct
their own table with [New].

Tables are immutable after construction and may be shared between goroutines
without locking.
*/
package codetable
