package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/josephnicholas/VerusCoin/services/explorer/httpimpl"
	"github.com/josephnicholas/VerusCoin/settings"
	"github.com/josephnicholas/VerusCoin/ulogger"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "verusd"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	startExplorer := flag.Bool("explorer", true, "start explorer HTTP service")
	help := flag.Bool("help", false, "Show help")

	flag.Parse()

	if help != nil && *help {
		fmt.Println("usage: verusd [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -explorer=<1|0>")
		fmt.Println("          whether to start the explorer HTTP service (default=true)")
		fmt.Println("")
		return
	}

	tSettings := settings.NewSettings()

	logger := ulogger.New(progname,
		ulogger.WithLevel(tSettings.LogLevel),
		ulogger.WithLoggerType(tSettings.LoggerType),
	)

	stats := gocore.Config().Stats()
	logger.Infof("STATS\n%s\nVERSION\n-------\n%s (%s)\n\n", stats, version, commit)
	logger.Infof("Network: %s (%s)", tSettings.ChainCfgParams.Name, tSettings.ChainCfgParams.CoinName)

	go func() {
		if tSettings.ProfilerAddr != "" {
			logger.Infof("Starting profile on http://%s/debug/pprof", tSettings.ProfilerAddr)
			logger.Fatalf("%v", http.ListenAndServe(tSettings.ProfilerAddr, nil))
		}
	}()

	prometheusEndpoint, ok := gocore.Config().Get("prometheusEndpoint")
	if ok && prometheusEndpoint != "" {
		logger.Infof("Starting prometheus endpoint on %s", prometheusEndpoint)
		http.Handle(prometheusEndpoint, promhttp.Handler())
	}

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	var explorerServer *httpimpl.HTTP

	if *startExplorer {
		g.Go(func() error {
			logger.Infof("Starting Explorer")

			var err error

			explorerServer, err = httpimpl.New(logger.New("expl"), tSettings)
			if err != nil {
				return err
			}

			return explorerServer.Start(ctx, tSettings.Explorer.HTTPListenAddress)
		})
	}

	select {
	case <-interrupt:
		break
	case <-ctx.Done():
		break
	}

	logger.Infof("received shutdown signal")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if explorerServer != nil {
		_ = explorerServer.Stop(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.Errorf("server returning an error: %v", err)
		os.Exit(2)
	}
}
