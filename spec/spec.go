// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Default grid size when a script has no get_size().
const (
	DEFAULT_COLS = 4
	DEFAULT_ROWS = 3
)

//go:generate go tool stringer -linecomment -type=Tile
type Tile int

const (
	TILE_COMPUTE Tile = iota // compute
	TILE_MEMORY              // memory
	TILE_DAMAGED             // damaged
)

//go:generate go tool stringer -linecomment -type=StreamKind
type StreamKind int

const (
	STREAM_INPUT  StreamKind = iota // input
	STREAM_OUTPUT                   // output
)

// Stream is one data stream attached above (input) or below (output) the
// grid column Col.
type Stream struct {
	Kind StreamKind
	Name string
	Col  int
	Data []int
}

// Spec is a loaded puzzle definition.
type Spec struct {
	Cols    int
	Rows    int
	Layout  []Tile // row-major, one entry per grid position
	Streams []Stream
}

// Tile returns the tile kind at grid column x, row y.
func (sp *Spec) Tile(x, y int) Tile {
	return sp.Layout[y*sp.Cols+x]
}

var predeclared = starlark.StringDict{
	"TILE_COMPUTE":  starlark.MakeInt(int(TILE_COMPUTE)),
	"TILE_MEMORY":   starlark.MakeInt(int(TILE_MEMORY)),
	"TILE_DAMAGED":  starlark.MakeInt(int(TILE_DAMAGED)),
	"STREAM_INPUT":  starlark.MakeInt(int(STREAM_INPUT)),
	"STREAM_OUTPUT": starlark.MakeInt(int(STREAM_OUTPUT)),
}

// Load reads and evaluates a puzzle script from a file.
func Load(filename string) (sp *Spec, err error) {
	return Parse(filename, nil)
}

// Parse evaluates a puzzle script. src may be nil to read from filename,
// or a string or []byte of script text, as for starlark.ExecFileOptions.
func Parse(filename string, src any) (sp *Spec, err error) {
	thread := &starlark.Thread{Name: "spec"}
	opts := &syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	sp = &Spec{Cols: DEFAULT_COLS, Rows: DEFAULT_ROWS}

	if _, ok := globals["get_size"]; ok {
		var size starlark.Value
		size, err = call(thread, globals, "get_size")
		if err != nil {
			return nil, err
		}
		var dims []int
		dims, err = intList(size)
		if err != nil || len(dims) != 2 {
			return nil, ErrScript{Func: "get_size", Err: ErrExpectTuple}
		}
		sp.Cols, sp.Rows = dims[0], dims[1]
	}

	layout, err := call(thread, globals, "get_layout")
	if err != nil {
		return nil, err
	}
	tiles, err := intList(layout)
	if err != nil {
		return nil, ErrScript{Func: "get_layout", Err: err}
	}
	if len(tiles) != sp.Cols*sp.Rows {
		return nil, ErrScript{Func: "get_layout", Err: ErrLayout}
	}
	for _, t := range tiles {
		if t < int(TILE_COMPUTE) || t > int(TILE_DAMAGED) {
			return nil, ErrScript{Func: "get_layout", Err: ErrTile}
		}
		sp.Layout = append(sp.Layout, Tile(t))
	}

	streams, err := call(thread, globals, "get_streams")
	if err != nil {
		return nil, err
	}
	err = sp.parseStreams(streams)
	if err != nil {
		return nil, ErrScript{Func: "get_streams", Err: err}
	}

	return sp, nil
}

func (sp *Spec) parseStreams(v starlark.Value) (err error) {
	list, ok := v.(starlark.Iterable)
	if !ok {
		return ErrExpectList
	}
	for entry := range starlark.Elements(list) {
		tuple, ok := entry.(starlark.Tuple)
		if !ok || len(tuple) != 4 {
			return ErrExpectTuple
		}
		var st Stream

		kind, err := asInt(tuple[0])
		if err != nil {
			return err
		}
		if kind < int(STREAM_INPUT) || kind > int(STREAM_OUTPUT) {
			return ErrStreamKind
		}
		st.Kind = StreamKind(kind)

		name, ok := starlark.AsString(tuple[1])
		if !ok {
			return ErrExpectTuple
		}
		st.Name = name

		st.Col, err = asInt(tuple[2])
		if err != nil {
			return err
		}

		st.Data, err = intList(tuple[3])
		if err != nil {
			return err
		}

		sp.Streams = append(sp.Streams, st)
	}

	return nil
}

// call invokes a no-argument function defined by the script.
func call(thread *starlark.Thread, globals starlark.StringDict, name string) (v starlark.Value, err error) {
	fn, ok := globals[name].(starlark.Callable)
	if !ok {
		return nil, ErrScript{Func: name, Err: ErrNotFunction}
	}
	return starlark.Call(thread, fn, nil, nil)
}

func asInt(v starlark.Value) (value int, err error) {
	err = starlark.AsInt(v, &value)
	if err != nil {
		err = ErrExpectInt
	}
	return
}

// intList flattens a starlark list or tuple of integers.
func intList(v starlark.Value) (values []int, err error) {
	list, ok := v.(starlark.Iterable)
	if !ok {
		return nil, ErrExpectList
	}
	for entry := range starlark.Elements(list) {
		value, err := asInt(entry)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, nil
}
