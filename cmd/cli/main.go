package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/limaJavier/uniquedistancing/internal/render"
	"github.com/limaJavier/uniquedistancing/internal/search"
)

var log = logrus.New()

func main() {
	// Define arguments
	widthPtr := flag.Int("width", 3, "Grid width in every direction")
	dimensionPtr := flag.Int("dimension", 2, "Number of spatial dimensions")
	countersPtr := flag.Int("counters", 0, "Number of counters to place; defaults to the grid width")
	printPtr := flag.Bool("p", false, "Print every solution")
	verbosePtr := flag.Bool("v", false, "Log progress while searching")
	parallelPtr := flag.Bool("parallel", false, "Run the uniqueness filter on multiple workers")
	workersPtr := flag.Int("workers", 0, "Worker count for -parallel; defaults to the number of CPUs")
	filePtr := flag.String("file", "", "Path to a JSON job file; overrides the grid flags")
	outFilePtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()

	input := search.SearchInput{
		Dimension: *dimensionPtr,
		Width:     *widthPtr,
		Counters:  *countersPtr,
		Parallel:  *parallelPtr,
		Workers:   *workersPtr,
	}
	if *filePtr != "" {
		var err error
		input, err = search.InputFromJson(*filePtr)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
	}

	// Validate arguments
	config := input.Config()
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *outFilePtr != "" {
		file, err := os.Create(*outFilePtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	if *verbosePtr {
		config.ProgressInterval = 1_000_000
		config.OnProgress = func(tried uint64, found int) {
			log.WithFields(logrus.Fields{
				"tried": tried,
				"found": found,
			}).Info("searching")
		}
	}

	solver := input.Solver()
	started := time.Now()
	result, err := solver.Solve(config)
	if err != nil {
		log.Fatal(err)
	}

	if *printPtr {
		for _, solution := range result.Solutions {
			fmt.Fprintln(out, "-----")
			fmt.Fprint(out, render.Arrangement(result.Grid, solution))
		}
	}

	if !solver.Verify(result) {
		log.Fatal("verification failed")
	}

	fmt.Fprintf(out, "Found %v solutions in %v total arrangements.\n", len(result.Solutions), result.Total)
	log.WithFields(logrus.Fields{
		"dimension": config.Dimension,
		"width":     config.Width,
		"counters":  config.Counters,
		"solutions": len(result.Solutions),
		"elapsed":   time.Since(started).Round(time.Millisecond).String(),
	}).Info("search finished")
}
