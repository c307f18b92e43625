// Package typescript turns a schema model into a TypeScript type-definition
// document: a Collections enum, one record type per collection, and a
// CollectionRecords mapping tying the two together. The package performs no
// I/O and keeps no state between runs.
package typescript
