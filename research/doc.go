// Package research defines the structured research output and the glue
// around an agent run: prompt assembly, response parsing, and artifact
// export.
//
// A [Schema] describes the JSON shape the model must produce and knows
// how to parse and validate a raw model reply. [Assemble] builds the
// conversation for a query, [Reconcile] turns a finished agent run into
// a validated [Response], and [Export]/[Filename] produce the
// downloadable JSON artifact.
package research
