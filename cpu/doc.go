// Package cpu implements the compute nodes of the grid and their assembly
// language.
//
// A compute node has two saturating registers (ACC and BAK, clamped to
// ±999), a program counter over at most 15 instructions, and a four-state
// execution machine: running, waiting to read a port, waiting to write a
// port, or halted by a fault. Programs are produced by the single-pass
// Assembler, either for one node or for a whole save file of @n blocks.
package cpu
