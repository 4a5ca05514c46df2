// Command campusnav routes across a campus map and authors maps from
// marker logs.
//
// Usage:
//
//	campusnav route  [-config nav.yaml] -map campus.json -from gate -to library [-svg out.svg]
//	campusnav author -in marks.yaml -out campus.json [-exact-ids] [-oneway] [-ground] [-spanning]
//	campusnav check  -map campus.json [-allow-oneway]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "campusnav:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	switch args[0] {
	case "route":
		return runRoute(args[1:], stdout, stderr)
	case "author":
		return runAuthor(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `campusnav <command> [flags]

Commands:
  route   compute a route, print directions and simulate the walk
  author  turn a marker log into a map document
  check   report dangling and one-way connections and unreachable islands

Run "campusnav <command> -h" for the flags of a command.
`)
}
