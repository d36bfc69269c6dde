// Package datatype provides the minimal target data types the wrappers
// consume and produce.
//
// A DataType names a type of the generated code. Wrappers never modify a data
// type; they return the input or a new value that wraps it.
package datatype
