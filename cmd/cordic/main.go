// Command cordic demonstrates CORDIC sine/cosine evaluation.
//
// Modes:
//
//	cordic compute [-fixed] <theta> <iterations>
//	cordic bench [-iters n] [-db path]
//	cordic plot [-iters n]
//	cordic tone [-freq hz] [-dur d] [-iters n]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/cordic/bench"
	"github.com/lixenwraith/cordic/cordic"
	"github.com/lixenwraith/cordic/fixed"
	"github.com/lixenwraith/cordic/plot"
	"github.com/lixenwraith/cordic/tone"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: cordic <mode> [flags]

modes:
  compute [-fixed] <theta> <iterations>
        evaluate cos/sin of theta (radians); -fixed uses Q32.32 arithmetic
  bench [-iters n] [-db path]
        sweep theta 0.00..3.13 step 0.01 against the stdlib reference,
        CSV to stdout; -db also records the run in SQLite
  plot [-iters n]
        interactive terminal plot of CORDIC vs stdlib curves
  tone [-freq hz] [-dur d] [-iters n]
        play a sine tone synthesized by the CORDIC engine
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "compute":
		err = runCompute(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	case "plot":
		err = runPlot(os.Args[2:])
	case "tone":
		err = runTone(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "cordic: unknown mode %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "cordic:", err)
		os.Exit(1)
	}
}

// evaluate runs the engine on whichever representation the caller picked
// and prints through that representation's own rendering.
func evaluate[T fixed.Real[T]](theta T, iters int) error {
	c, s, err := cordic.Rotate(theta, iters)
	if err != nil {
		return err
	}
	fmt.Printf("cos %s == %s\nsin %s == %s\n", theta, c, theta, s)
	return nil
}

func runCompute(args []string) error {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	useFixed := fs.Bool("fixed", false, "use Q32.32 fixed-point arithmetic")
	fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("compute needs <theta> <iterations>, got %d arguments", fs.NArg())
	}

	theta, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("bad theta %q: %w", fs.Arg(0), err)
	}
	iters, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("bad iteration count %q: %w", fs.Arg(1), err)
	}

	if *useFixed {
		return evaluate(fixed.Q(theta), iters)
	}
	return evaluate(fixed.F(theta), iters)
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	iters := fs.Int("iters", bench.DefaultIterations, "micro-rotations per sample")
	dbPath := fs.String("db", "", "also record the run in a SQLite file")
	fs.Parse(args)

	sweep := bench.Default()
	sweep.Iterations = *iters

	samples, err := sweep.Run()
	if err != nil {
		return err
	}
	if err := bench.WriteCSV(os.Stdout, samples); err != nil {
		return err
	}

	if *dbPath != "" {
		store, err := bench.OpenStore(*dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.SaveRun(sweep, samples); err != nil {
			return err
		}
	}
	return nil
}

func runPlot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	iters := fs.Int("iters", 8, "starting micro-rotation count")
	fs.Parse(args)

	return plot.Show(*iters)
}

func runTone(args []string) error {
	fs := flag.NewFlagSet("tone", flag.ExitOnError)
	freq := fs.Float64("freq", 440, "tone frequency in Hz")
	dur := fs.Duration("dur", 2*time.Second, "tone duration")
	iters := fs.Int("iters", 12, "micro-rotations per sample")
	fs.Parse(args)

	return tone.Play(*freq, *dur, *iters)
}
