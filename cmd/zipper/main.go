// Package main provides a command-line front end for the zipper archiver:
// compress a directory, decompress an archive, or list an archive's
// members.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/coldforge/zipper"
	"github.com/coldforge/zipper/internal/debug"
)

func main() {
	compress := flag.Bool("c", false, "compress the given directory into an archive")
	decompress := flag.Bool("d", false, "decompress the given archive into a directory")
	list := flag.Bool("l", false, "list the members of the given archive")
	verbose := flag.Bool("v", false, "dump each member's raw bit layout while listing")
	excludeFlag := flag.String("x", "", "comma-separated doublestar glob patterns to exclude from compression")
	output := flag.String("o", "", "output path (archive for -c, directory for -d; defaults are derived from the input)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: zipper [-c|-d|-l] [-x patterns] [-o path] <input>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := args[0]

	switch {
	case *list:
		runList(input, *verbose)
	case *decompress:
		runDecompress(input, *output)
	default:
		runCompress(input, *output, *excludeFlag, *compress)
	}
}

func runCompress(inputDir, out, excludeFlag string, explicit bool) {
	_ = explicit // -c is accepted but compression is also the default action
	if out == "" {
		out = strings.TrimRight(inputDir, "/") + ".zipper"
	}
	var excludes []string
	if excludeFlag != "" {
		excludes = strings.Split(excludeFlag, ",")
	}
	if err := zipper.Compress(inputDir, out, zipper.Options{Excludes: excludes}); err != nil {
		log.Fatalf("zipper: %v", err)
	}
	fmt.Printf("wrote %s\n", out)
}

func runDecompress(archivePath, out string) {
	if out == "" {
		out = strings.TrimSuffix(archivePath, ".zipper")
		if out == archivePath {
			out = archivePath + ".out"
		}
	}
	if err := zipper.Decompress(archivePath, out); err != nil {
		log.Fatalf("zipper: %v", err)
	}
	fmt.Printf("extracted to %s\n", out)
}

func runList(archivePath string, verbose bool) {
	infos, err := zipper.List(archivePath)
	if err != nil {
		log.Fatalf("zipper: %v", err)
	}

	fmt.Printf("%-40s %12s %12s %7s %s\n", "name", "original", "compressed", "ratio", "fingerprint")
	for _, info := range infos {
		compressedBytes := (info.CompressedBits + 7) / 8
		ratio := 0.0
		if info.OriginalByteSize > 0 {
			ratio = 100 * float64(compressedBytes) / float64(info.OriginalByteSize)
		}
		fp, err := debug.Fingerprint(archivePath, info.Name)
		if err != nil {
			log.Fatalf("zipper: fingerprint %s: %v", info.Name, err)
		}
		fmt.Printf("%-40s %12d %12d %6.1f%% %016x\n",
			info.Name, info.OriginalByteSize, compressedBytes, ratio, fp)
	}

	if verbose {
		for _, info := range infos {
			fmt.Printf("\n%s:\n", info.Name)
			if err := debug.DumpBits(archivePath, info.Name); err != nil {
				log.Fatalf("zipper: dump %s: %v", info.Name, err)
			}
		}
	}
}
