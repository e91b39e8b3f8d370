package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	glspserver "github.com/tliron/glsp/server"

	"github.com/go-robot-tools/go-robot-lsp/internal/lsp"
	"github.com/go-robot-tools/go-robot-lsp/internal/server"

	// Must include a backend implementation for commonlog
	_ "github.com/tliron/commonlog/simple"
)

var (
	tcpMode  bool
	tcpPort  int
	logLevel string
	logFile  string
)

func init() {
	flag.BoolVar(&tcpMode, "tcp", false, "Run server in TCP mode (for debugging)")
	flag.IntVar(&tcpPort, "port", 8765, "TCP port to listen on (used with -tcp)")
	flag.StringVar(&logLevel, "log-level", "error", "Log level: error, info, debug")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "%s version %s\n\n", lsp.ServerName, lsp.ServerVersion)
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", lsp.ServerName)
	fmt.Fprintf(os.Stderr, "Language server for Robot Framework suites and resource files\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	if flag.NArg() > 0 && flag.Arg(0) == "version" {
		fmt.Printf("%s version %s\n", lsp.ServerName, lsp.ServerVersion)
		os.Exit(0)
	}

	var path *string
	if logFile != "" {
		path = &logFile
	}
	commonlog.Configure(verbosity(logLevel), path)

	srv := server.New()
	defer srv.Close()

	handler := srv.Handler()
	glspServer := glspserver.NewServer(&handler, lsp.ServerName, logLevel == "debug")

	var err error
	if tcpMode {
		err = glspServer.RunTCP(fmt.Sprintf("127.0.0.1:%d", tcpPort))
	} else {
		err = glspServer.RunStdio()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "server error: %s\n", err.Error())
		os.Exit(1)
	}
}

// verbosity maps the -log-level flag to commonlog verbosity, where zero
// keeps only errors and warnings.
func verbosity(level string) int {
	switch level {
	case "debug":
		return 2
	case "info":
		return 1
	default:
		return 0
	}
}
