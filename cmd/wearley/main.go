// Command wearley is an interactive shell for loading a grammar and
// trying it against input lines, using either the Earley parser or the
// packrat parser.
package main

import (
	"flag"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	grammarPath := flag.String("grammar", "", "path to a grammar file to load on startup")
	startRule := flag.String("start", "", "start rule name (defaults to the first rule defined)")
	tlevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Parse()

	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to wearley")

	r, err := newREPL(*grammarPath, *startRule)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	r.run(strings.TrimSpace(strings.Join(flag.Args(), " ")))
}

func traceLevel(s string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(s)
}

func tracer() tracing.Trace {
	return tracing.Select("wearley.cmd")
}
