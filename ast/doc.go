/*
Package ast defines the syntax tree produced by package earley's Parser.

A tree is built and torn down iteratively rather than recursively: Parser
reconstructs it via an explicit stack instead of nested function calls
(see earley.Parser.Parse), and Node.Release tears it down the same way, so
that neither operation is bounded by the size of the Go call stack no
matter how deep a grammar's right recursion runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ast
