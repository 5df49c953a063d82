// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../../LICENSE.md.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/Arshpreet07/File-compressor/huffman"
)

var log = logging.MustGetLogger("huffpack")

const progName = "huffpack"
const usageMessageRaw = `
Usage: huffpack OPTIONS SUBCOMMAND...

Options:
  --debug, -d
	Trace tree construction and bit counts to standard error.
  --force, -f
	Overwrite output files that already exist.
  --verify, -V
	After compressing, decompress in memory and compare digests
	before writing the output file.

Subcommands:
  compress INPUT OUTPUT
	Compress INPUT into the container file OUTPUT.  An empty INPUT
	is skipped and no OUTPUT is written.
  decompress INPUT OUTPUT
	Decompress the container file INPUT into OUTPUT.
  verify INPUT
	Compress and decompress INPUT in memory and check that the
	result matches.
  show INPUT
	Print the frequency table and codewords stored in the container
	file INPUT.
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

// usageError is a command line that cannot be run as given.
type usageError struct {
	detail string
}

func (ue *usageError) Error() string {
	return ue.detail
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) error {
	return &usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

// commandLine hands out positional arguments after flag parsing.  The first missing or surplus argument
// is remembered and reported by endOfArgs.
type commandLine struct {
	flags *flag.FlagSet
	argI  int
	err   error
}

func (cl *commandLine) nextArg(expected string) string {
	if !(cl.argI < cl.flags.NArg()) {
		if cl.err == nil {
			cl.err = usageErrorf("not enough arguments; expected %s", expected)
		}
		return ""
	}
	arg := cl.flags.Arg(cl.argI)
	cl.argI++
	return arg
}

func (cl *commandLine) endOfArgs() error {
	if cl.err == nil && cl.argI < cl.flags.NArg() {
		cl.err = usageErrorf("too many arguments at %d (\"%s\")", cl.argI, cl.flags.Arg(cl.argI))
	}
	return cl.err
}

var leveledLogBackend logging.LeveledBackend

func startLogging(out io.Writer) {
	backend := logging.NewLogBackend(out, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// parseCommand turns the arguments into the subcommand to run.
func parseCommand(args []string, stdout io.Writer) (func() error, error) {
	var opts options
	var debugLogging bool
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	ourFlags.BoolVar(&opts.force, "force", false, "")
	ourFlags.BoolVar(&opts.force, "f", false, "")
	ourFlags.BoolVar(&opts.verify, "verify", false, "")
	ourFlags.BoolVar(&opts.verify, "V", false, "")

	if err := ourFlags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, usageErrorf("%s", err.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	cl := &commandLine{flags: ourFlags}
	var requestedCommand func() error
	switch cmdArg := cl.nextArg("SUBCOMMAND"); cmdArg {
	default:
		if cl.err == nil {
			return nil, usageErrorf("unknown subcommand \"%s\"", cmdArg)
		}
	case "compress":
		in, out := cl.nextArg("INPUT"), cl.nextArg("OUTPUT")
		requestedCommand = func() error {
			err := compressCommand(in, out, opts)
			if errors.Is(err, huffman.ErrEmptyInput) {
				log.Warningf("%s is empty; no compression performed", in)
				return nil
			}
			return err
		}
	case "decompress":
		in, out := cl.nextArg("INPUT"), cl.nextArg("OUTPUT")
		requestedCommand = func() error { return decompressCommand(in, out, opts) }
	case "verify":
		in := cl.nextArg("INPUT")
		requestedCommand = func() error { return verifyCommand(in, stdout) }
	case "show":
		in := cl.nextArg("INPUT")
		requestedCommand = func() error { return showCommand(in, stdout) }
	}

	if err := cl.endOfArgs(); err != nil {
		return nil, err
	}
	return requestedCommand, nil
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	startLogging(stderr)

	requestedCommand, err := parseCommand(args, stdout)
	switch {
	case err == flag.ErrHelp:
		io.WriteString(stdout, usageMessage())
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "%s: %s\n%s", progName, err.Error(), usageMessage())
		return 64
	}

	if err = requestedCommand(); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", progName, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
