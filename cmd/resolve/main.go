/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// A command line tool and REPL which resolves operator expressions,
// e.g. `resolve 'a + b*c < d'`
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
)

var (
	flagCatalog = flag.String("catalog", "", "path to an operator catalog (YAML); the built-in catalog is used by default")
	flagFormat  = flag.String("format", "source", "output format: source, tree, or json")
	flagWidth   = flag.Int("width", 80, "maximum line width of source output")
	flagNoSpace = flag.Bool("nospace", false, "allow tight prefix operators next to juxtaposition")
	flagExplain = flag.String("explain", "", "describe the precedence of the given operator and exit")
	flagDebug   = flag.Bool("debug", false, "log resolution steps")
	flagTrace   = flag.Bool("trace", false, "log the duration of resolutions")
	flagNoColor = flag.Bool("nocolor", false, "disable colored output")
)

func main() {
	flag.Parse()

	logger := newLogger(*flagDebug)

	table, err := loadTable(*flagCatalog)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load operator catalog")
	}
	logger.Debug().
		Int("classes", len(table.Classes())).
		Msg("loaded operator catalog")

	format, ok := parseOutputFormat(*flagFormat)
	if !ok {
		logger.Fatal().Str("format", *flagFormat).Msg("unknown output format")
	}

	config := &resolver.Config{
		Logger:  logger,
		NoSpace: *flagNoSpace,
	}
	if *flagTrace {
		config.TracingEnabled = true
		config.OnRecordTrace = traceLogger(logger)
	}

	s := newSession(table, config, os.Stdout, os.Stderr)
	s.format = format
	s.width = *flagWidth
	s.useColor = !*flagNoColor && isTerminal(os.Stderr)

	if *flagExplain != "" {
		fmt.Print(s.explain(*flagExplain))
		return
	}

	args := flag.Args()
	switch {
	case len(args) > 0:
		failed := false
		for i, arg := range args {
			location := fmt.Sprintf("argument %d", i+1)
			if s.resolve(location, arg) != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}

	case isTerminal(os.Stdin):
		s.runREPL()

	default:
		if !s.resolveLines(bufio.NewScanner(os.Stdin)) {
			os.Exit(1)
		}
	}
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.TraceLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func traceLogger(logger zerolog.Logger) resolver.OnRecordTraceFunc {
	return func(operationName string, duration time.Duration, attrs []attribute.KeyValue) {
		event := logger.Info().
			Str("operation", operationName).
			Dur("duration", duration)
		for _, attr := range attrs {
			event = event.Str(string(attr.Key), attr.Value.Emit())
		}
		event.Msg("trace")
	}
}

func loadTable(path string) (*precedence.Table, error) {
	if path == "" {
		return precedence.Default(), nil
	}

	catalog, err := precedence.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return precedence.NewTable(catalog)
}

func parseOutputFormat(name string) (outputFormat, bool) {
	switch strings.ToLower(name) {
	case "source":
		return outputFormatSource, true
	case "tree":
		return outputFormatTree, true
	case "json":
		return outputFormatJSON, true
	}
	return outputFormatSource, false
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveLines resolves each non-empty line separately.
// It returns false if any line failed to resolve.
func (s *session) resolveLines(scanner *bufio.Scanner) bool {
	const location = "stdin"

	ok := true
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		// keep the line number in error messages
		code := strings.Repeat("\n", lineNumber-1) + line
		if s.resolve(location, code) != nil {
			ok = false
		}
	}

	if err := scanner.Err(); err != nil {
		panic(err)
	}
	return ok
}
