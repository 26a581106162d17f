// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/utis100/cpu"
	"github.com/ezrec/utis100/fabric"
	"github.com/ezrec/utis100/machine"
	"github.com/ezrec/utis100/spec"
)

func main() {
	var puzzle string
	var budget int
	var strict bool
	var verbose bool

	flag.StringVar(&puzzle, "p", "", "Puzzle definition (.star file) to validate against")
	flag.IntVar(&budget, "b", 100000, "Cycle budget")
	flag.BoolVar(&strict, "s", false, "Also fault a memory node on overflow")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	save := cpu.Save{}
	if flag.NArg() == 1 {
		name := flag.Arg(0)
		inf, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		save, err = asm.ParseSave(inf)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	}

	if len(puzzle) != 0 {
		validate(puzzle, save, budget, strict, verbose)
		return
	}

	sandbox(save, budget, strict, verbose)
}

// validate runs a save against a puzzle definition and reports the result.
func validate(filename string, save cpu.Save, budget int, strict, verbose bool) {
	sp, err := spec.Load(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	p, err := machine.FromSpec(sp, save)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
	p.Verbose = verbose
	p.HaltStackOnOverflow = strict

	state := p.Run(budget)
	for _, out := range p.Outputs() {
		fmt.Printf("%v: %v %v\n", out.Name, out.Node.State(), out.Node.Received)
	}
	fmt.Printf("%v after %v cycles\n", state, p.Cycle())

	if state != fabric.TEST_PASSED {
		os.Exit(1)
	}
}

// sandbox runs the save on the sandbox grid, feeding console input from a
// small interactive prompt and echoing console output.
func sandbox(save cpu.Save, budget int, strict, verbose bool) {
	sb := machine.NewSandbox(save)
	sb.Verbose = verbose
	sb.HaltStackOnOverflow = strict

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	drain := func() {
		for value, ok := sb.ReadConsole(); ok; value, ok = sb.ReadConsole() {
			fmt.Printf("%v\n", value)
		}
	}

	run := func() {
		sb.Run(budget)
		drain()
		if verbose {
			fmt.Printf("cycle %v\n", sb.Cycle())
		}
	}

	fmt.Println("numbers feed the console; 'step', 'run', 'dump', 'quit'")
	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt.
			break
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			run()
			continue
		}

		quit := false
		for _, word := range words {
			value, nerr := strconv.Atoi(word)
			if nerr == nil {
				sb.WriteConsole(value)
				continue
			}
			switch word {
			case "step":
				sb.Step()
				drain()
			case "run":
				run()
			case "dump":
				for pos := range sb.All() {
					fmt.Printf("%v: %v\n", pos, sb.Snapshot(pos))
				}
			case "quit", "exit":
				quit = true
			default:
				fmt.Printf("?%v\n", word)
			}
		}
		if quit {
			break
		}
	}
}
