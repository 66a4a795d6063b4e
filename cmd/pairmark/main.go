// Command pairmark embeds, extracts and verifies blind DCT watermarks in
// PNG and JPEG images.
//
//	pairmark embed   -src in.png -dst out.png -text "owner:42"
//	pairmark extract -src out.png -text-len 8
//	pairmark verify  -src out.jpg -text "owner:42" -tolerance 0.1
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errMismatch = errors.New("watermark does not match")

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "embed":
		err = embedMain(ctx, args)
	case "extract":
		err = extractMain(ctx, args)
	case "verify":
		err = verifyMain(ctx, args)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if errors.Is(err, errMismatch) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(os.Args[1])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pairmark <embed|extract|verify> [flags]")
	fmt.Fprintln(os.Stderr, "run 'pairmark <command> -h' for the flags of a command")
}

// setupLog sets the global level: errors only, info with -v, debug with
// -debug. -human switches to the console writer.
func setupLog(verbose, debug, human bool) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if human {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
