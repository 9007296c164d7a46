/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command bcp47check is a minimal interactive loop over the bcp47 package.
// It is deliberately outside the core: apart from loading the registry, it
// only calls bcp47.Parse and formats the result for a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/langtagger/bcp47/bcp47"
)

func main() {
	registryPath := flag.String("registry", "", "path to an IANA Language Subtag Registry file (default: embedded snapshot)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	reg, err := loadRegistry(*registryPath)
	if err != nil {
		logger.Error("failed to load registry", "error", err)
		os.Exit(1)
	}

	os.Exit(run(os.Stdin, os.Stdout, reg))
}

func loadRegistry(path string) (*bcp47.Registry, error) {
	if path == "" {
		return bcp47.NewRegistry()
	}
	return bcp47.LoadRegistryFile(path)
}

// run executes the menu loop and returns the process exit code.
func run(in io.Reader, out io.Writer, reg *bcp47.Registry) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "1. Validate a language tag")
		fmt.Fprintln(out, "0. Quit")

		if !scanner.Scan() {
			return 0
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}

		switch choice {
		case 0:
			return 0
		case 1:
			if !scanner.Scan() {
				return 0
			}
			printResults(out, bcp47.Parse(reg, strings.TrimSpace(scanner.Text())))
		}
	}
}

func printResults(out io.Writer, r bcp47.Results) {
	fmt.Fprintf(out, "language: %s\n", r.LanguageTag)
	fmt.Fprintf(out, "Extended: %s\n", strings.Join(r.ExtendedTags, ", "))
	fmt.Fprintf(out, "Scripts: %s\n", strings.Join(r.ScriptTags, ", "))
	fmt.Fprintf(out, "Regions: %s\n", strings.Join(r.RegionTags, ", "))
	fmt.Fprintf(out, "Variants: %s\n", strings.Join(r.VariantTags, ", "))
	fmt.Fprintf(out, "Extensions: %s\n", strings.Join(r.ExtensionTags, ", "))
	fmt.Fprintf(out, "Private Use: %s\n", strings.Join(r.PrivateUseTags, ", "))

	canon := ""
	if r.Canonicalize != nil {
		canon = *r.Canonicalize
	}
	fmt.Fprintf(out, "Canonicalize: %s\n", canon)

	if len(r.ErrorMessages) == 0 {
		fmt.Fprintln(out, "No Errors.")
		return
	}
	fmt.Fprintln(out, "Error List.")
	fmt.Fprintln(out, "-----------")
	for _, msg := range r.ErrorMessages {
		fmt.Fprintln(out, msg)
	}
}
