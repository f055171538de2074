// Command muhash computes a MuHash multiset digest over a list of
// hex-encoded elements, read one per line from stdin or given as positional
// arguments. Lines prefixed with "-" are removed from the accumulator
// instead of inserted. It exists to exercise the library end to end; it
// carries no logic beyond wiring github.com/kaspanet/go-muhash's MuHash.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	muhash "github.com/kaspanet/go-muhash"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [hex-element ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  reads hex-encoded elements from stdin if none are given as arguments\n")
		fmt.Fprintf(os.Stderr, "  a line prefixed with '-' removes that element instead of inserting it\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "muhash:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	m := muhash.NewMuHash()

	apply := func(line string) error {
		remove := false
		if strings.HasPrefix(line, "-") {
			remove = true
			line = line[1:]
		}
		data, err := hex.DecodeString(line)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", line, err)
		}
		if remove {
			m.Remove(data)
		} else {
			m.Insert(data)
		}
		return nil
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := apply(arg); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := apply(line); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	digest := m.Finalize()
	fmt.Fprintln(stdout, hex.EncodeToString(digest[:]))
	return nil
}
