// Package spec loads puzzle definitions written as Starlark scripts.
//
// A puzzle script declares the grid layout and its input and output
// streams through two well-known functions:
//
//	def get_layout():
//	    return [TILE_COMPUTE, TILE_COMPUTE, TILE_MEMORY, TILE_DAMAGED, ...]
//
//	def get_streams():
//	    return [
//	        (STREAM_INPUT, "IN.A", 0, [1, 2, 3]),
//	        (STREAM_OUTPUT, "OUT.A", 0, [2, 4, 6]),
//	    ]
//
// An optional get_size() returning (columns, rows) overrides the default
// 4 by 3 grid.
package spec
