/*
Package ports defines the narrow interfaces between the Pipework core and
its adapters.

The engine depends on a Ledger for recording; hosts depend on a Dispatcher
for processing. Implementations live under pkg/adapters.
*/
package ports
