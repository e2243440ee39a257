// Package drawio implements a document model and XML writer for the
// draw.io diagram-interchange format.
//
// The model mirrors the format's hierarchy: a [Document] owns ordered
// [Page] values, each page owns ordered [Cell] values, and every cell
// carries a [Geometry] and a [Style]. Serialization walks the tree
// bottom-up into a single XML string which [Document.Write] puts on disk.
//
// Every page implicitly contains the two structural cells the format
// requires (ids "0" and "1"); they are emitted automatically and are never
// visible through the API. User cell identifiers must be unique within a
// document and must not reuse "0" or "1" — [Document.Serialize] enforces
// this and fails with a [DuplicateIDError] otherwise.
package drawio
