package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/gostonefire/hashtables/internal/benchmark"
	"github.com/gostonefire/hashtables/student"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[hashbench] no .env file loaded, using environment and flags")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Getenv, os.Stdout)
	stop()

	if err != nil {
		log.Fatalf("[hashbench] %v", err)
	}
}

// run - Benchmarks every default table on generated student keys and writes the report to stdout.
// Flags in args override the HASHBENCH_* variables looked up with getenv.
func run(ctx context.Context, args []string, getenv func(string) string, stdout io.Writer) (err error) {
	flags := flag.NewFlagSet("hashbench", flag.ContinueOnError)
	var (
		itemsFlag    = flags.Int("items", atoiDefault(getenv("HASHBENCH_ITEMS"), 1000), "number of student keys per benchmark")
		parallelFlag = flags.Int("parallel", atoiDefault(getenv("HASHBENCH_PARALLEL"), 1), "number of benchmarks run at the same time, 0 for no limit")
		seedFlag     = flags.Int64("seed", atoi64Default(getenv("HASHBENCH_SEED"), 0), "shuffle keys with this seed, 0 keeps ID order")
	)
	if err = flags.Parse(args); err != nil {
		return
	}

	if *itemsFlag <= 0 {
		err = fmt.Errorf("items must be positive, got %d", *itemsFlag)
		return
	}

	students, err := student.Generate(student.NewIDGenerator(), *itemsFlag)
	if err != nil {
		err = fmt.Errorf("generating students: %w", err)
		return
	}

	keys := make([][]byte, len(students))
	for i, s := range students {
		keys[i] = s.Key()
	}
	if *seedFlag != 0 {
		r := rand.New(rand.NewSource(*seedFlag))
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	}

	log.Printf("[hashbench] benchmarking %d keys, parallelism %d", len(keys), *parallelFlag)

	results, err := benchmark.RunAll(ctx, benchmark.DefaultCases(), keys, *parallelFlag)
	if err != nil {
		return
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(w, "Table\tInsertion\tLookup\tRemoval\tMissing\t")
	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%s\t%v\t%v\t%v\t%d\t\n", r.Name, r.Insert, r.Lookup, r.Remove, r.Missing)
	}
	err = w.Flush()

	return
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func atoi64Default(s string, def int64) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	return def
}
