// Command gdlint lints GDScript source files and reports diagnostics from
// the lexer, parser, and lint engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/lint"
	"github.com/btouchard/gdlint/internal/parser"
	"github.com/btouchard/gdlint/internal/span"
	"github.com/btouchard/gdlint/internal/visualize"
)

func main() {
	format := flag.String("format", "rustc", "diagnostic format: rustc or codespan")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gdlint [-format rustc|codespan] <path...>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var errorCount, warningCount int
	for _, path := range paths {
		source, err := readSource(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gdlint: %s: %v\n", path, err)
			errorCount++
			continue
		}
		e, w := lintOne(os.Stdout, path, source, *format)
		errorCount += e
		warningCount += w
	}

	fmt.Printf("Checked %d file(s), %d error(s), %d warning(s)\n", len(paths), errorCount, warningCount)
	if errorCount > 0 {
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func lintOne(w io.Writer, path, source, format string) (errorCount, warningCount int) {
	file, parseDiags, noqas := parser.ParseFile(source)
	table := span.NewTable(source)

	lintDiags, err := lint.NewDefaultRunner().Run(nil, file, table, noqas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdlint: %s: %v\n", path, err)
		return 1, 0
	}

	all := append(append([]*diag.Diagnostic{}, parseDiags...), lintDiags...)
	lint.SortDiagnostics(all)

	var visualizer interface {
		VisualizeAll(io.Writer, []*diag.Diagnostic) error
	}
	if format == "codespan" {
		visualizer = visualize.NewCodespan(path, table)
	} else {
		visualizer = visualize.NewRustc(path, table)
	}
	if err := visualizer.VisualizeAll(w, all); err != nil {
		fmt.Fprintf(os.Stderr, "gdlint: %s: %v\n", path, err)
	}

	for _, d := range all {
		if d.Severity == diag.Error {
			errorCount++
		} else if d.Severity == diag.Warning {
			warningCount++
		}
	}
	return errorCount, warningCount
}
