/*
package logging provides the single zerolog.Logger this module writes
to, built via a Logger().With()...Logger() call chain so each call
site attaches only the fields relevant to it.

Function, Monomial, BitVec and MonomialMap stay silent; only
compose.Composer logs, at debug level, since it is the one stage
complex enough that a reader debugging a slow or stuck composition
needs visibility into.
*/
package logging
