// Command heapsort reads integer datasets from stdin and prints each one
// sorted in ascending order on its own line.
//
// Input is a whitespace-separated stream of datasets, each an element count
// followed by that many values:
//
//	9 5 3 17 10 84 19 6 22 9
//	5 4 1 3 2 16
//
// Output values are space-separated.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/heaplab/heapsort"
	"github.com/heaplab/heapsort/logger"
)

func main() {
	fQuiet := flag.Bool("q", false, "disable logging")
	flag.Parse()
	if *fQuiet {
		logger.Disable()
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("heapsort failed")
		os.Exit(1)
	}
}

// run processes datasets from r until EOF, writing one sorted line per
// dataset to w.
func run(r io.Reader, w io.Writer) error {
	log := logger.Logger()

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	bw := bufio.NewWriter(w)

	for {
		n, ok, err := nextInt(sc)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if n < 0 {
			return fmt.Errorf("negative element count %d", n)
		}

		values := make([]int, n)
		for i := range values {
			v, ok, err := nextInt(sc)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("dataset truncated: want %d values, got %d", n, i)
			}
			values[i] = v
		}

		h := heapsort.FromValues(values...)
		h.Build()
		if h.Len() > 0 {
			log.Debug().Int("n", n).Int("max", h.Max()).Msg("heap built")
		}
		h.Sort()

		for _, v := range h.Values() {
			fmt.Fprintf(bw, "%d ", v)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// nextInt returns the next whitespace-separated integer; ok is false on a
// clean EOF.
func nextInt(sc *bufio.Scanner) (v int, ok bool, err error) {
	if !sc.Scan() {
		return 0, false, sc.Err()
	}
	v, err = strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, fmt.Errorf("bad integer %q: %w", sc.Text(), err)
	}
	return v, true, nil
}
