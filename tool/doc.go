// Package tool provides the tool registry and the built-in research tools.
//
// A [Handler] pairs a tool definition with its implementation. Handlers are
// collected in a [Registry], which the agent consults to advertise tool
// definitions to the model and to dispatch the model's tool calls.
//
// Typed handlers can be created from ordinary Go functions with [NewFunc];
// the parameter schema is derived from the argument struct's json, desc, and
// required tags.
package tool
