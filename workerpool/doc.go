/*
package workerpool provides a bounded, process-independent worker
pool: a fixed-size pool of CPU-bound workers shared by Composer stages
and by Function.Apply's optional parallel evaluation path.

The pool is an injected collaborator with an explicit constructor
(New(size)) and no process-wide singleton: callers construct one pool
and thread it through every Composer and parallel Apply call that
should share it. A worker fault (panic) aborts the stage in flight and
is surfaced to the caller as an error, never left to crash the
process or silently drop work: every task submitted to a Run call
completes, errors, or panics before Run returns.
*/
package workerpool
