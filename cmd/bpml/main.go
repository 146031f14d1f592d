package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/banzg00/bpml/internal/config"
	"github.com/banzg00/bpml/internal/log"
	"github.com/banzg00/bpml/internal/otel"
	"github.com/banzg00/bpml/internal/profile"
	"github.com/banzg00/bpml/internal/rest"
	"github.com/banzg00/bpml/pkg/bpml"
	"github.com/banzg00/bpml/pkg/storage"
	"github.com/banzg00/bpml/pkg/storage/inmemory"
	"github.com/banzg00/bpml/pkg/storage/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		runValidate(os.Args[2:])
	case "analyze":
		runAnalyze(os.Args[2:])
	case "serve":
		runServe()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [arguments]

Commands:
  validate <file>...        validate model documents and report the first violation
  analyze [-process name] <file>
                            validate a model document and print its analysis report
  serve                     start the REST API server
`, os.Args[0])
}

func runValidate(args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	log.Init()
	engine := bpml.NewEngine()
	ctx := context.Background()
	failed := false
	for _, file := range args {
		deployment, err := engine.LoadFromFile(ctx, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", file, bpml.ErrorKind(err), err)
			failed = true
			continue
		}
		fmt.Printf("%s: OK (project %s, checksum %s)\n",
			file, deployment.Model.ProjectInfo.Name, deployment.Checksum)
	}
	if failed {
		os.Exit(1)
	}
}

func runAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	processName := fs.String("process", "", "analyze only the named process")
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	log.Init()
	engine := bpml.NewEngine()
	ctx := context.Background()

	deployment, err := engine.LoadFromFile(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", fs.Arg(0), bpml.ErrorKind(err), err)
		os.Exit(1)
	}

	var names []string
	if *processName != "" {
		names = []string{*processName}
	} else {
		for i := range deployment.Model.Processes {
			names = append(names, deployment.Model.Processes[i].Name)
		}
	}

	reports := make([]*bpml.AnalysisReport, 0, len(names))
	for _, name := range names {
		report, err := engine.Analyze(deployment, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		reports = append(reports, report)
	}
	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render reports: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runServe() {
	profile.InitProfile()
	log.Init()

	appContext, ctxCancel := context.WithCancel(context.Background())

	conf := config.InitConfig()

	openTelemetry, err := otel.SetupOtel(conf.Tracing)
	if err != nil {
		log.Error("Failed to set up OTEL: %s", err)
		os.Exit(1)
	}

	history, err := openHistory(conf.History)
	if err != nil {
		log.Error("Failed to open validation history store: %s", err)
		os.Exit(1)
	}

	engine := bpml.NewEngine(
		bpml.EngineWithName(conf.Name),
		bpml.EngineWithStorage(history),
		bpml.EngineWithMaxPathDepth(conf.Engine.MaxPathDepth),
		bpml.EngineWithReportCache(conf.Engine.CacheSize, conf.Engine.CacheTTL),
	)

	// Start the public API
	svr := rest.NewServer(engine, history, conf)
	svr.Start()

	appStop := make(chan os.Signal, 2)
	signal.Notify(appStop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	handleSigterm(appStop, appContext)

	ctxCancel()
	// cleanup
	svr.Stop(appContext)
	if history != nil {
		if err := history.Close(); err != nil {
			log.Error("failed to properly close history store: %s", err)
		}
	}
	openTelemetry.Stop(appContext)
}

func openHistory(conf config.History) (storage.Storage, error) {
	switch conf.Driver {
	case config.HistoryDriverNone:
		return nil, nil
	case config.HistoryDriverInMemory:
		return inmemory.NewStorage(), nil
	case config.HistoryDriverSqlite:
		return sqlite.NewStorage(conf.Path)
	default:
		return nil, fmt.Errorf("unknown history driver: %s", conf.Driver)
	}
}

func handleSigterm(appStop chan os.Signal, ctx context.Context) {
	signal.Notify(appStop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-appStop
	log.Infof(ctx, "Received %s. Shutting down", sig.String())
}
