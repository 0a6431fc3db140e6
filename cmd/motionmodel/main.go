package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/motionmodel"
	"github.com/foomo/motionmodel/config"
	"github.com/foomo/motionmodel/reports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the exit code, deferred cleanups run before main exits
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("motionmodel", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flagHelp := flags.Bool("help", false, "show help")
	flagConfig := flags.String("config", "", "path/to/config.yaml")
	flagFormat := flags.String("format", "", "force a format: json, json5, yaml or html")
	flagLenient := flags.Bool("lenient", false, "repair json5 style input")
	flagIgnoreRobots := flags.Bool("ignore-robots", false, "do not check robots.txt for http sources")
	flagTrace := flags.Bool("trace", false, "trace reads to stderr")
	flagDump := flags.Bool("dump", false, "dump all results")
	flagMetrics := flags.String("metrics", "", "serve prometheus metrics on this address")
	if errParse := flags.Parse(args); errParse != nil {
		return exitUsage
	}

	if len(flags.Args()) == 0 || *flagHelp {
		fmt.Fprintln(stderr, "foomo motionmodel - read motion scenes and their headers from files and urls")
		fmt.Fprintln(stderr, "usage", "motionmodel", "[flags] path/to/scene.json http://server.com/scene.json5 ...")
		flags.PrintDefaults()
		return exitUsage
	}

	conf := config.Default()
	if *flagConfig != "" {
		fileConf, errConf := config.Get(*flagConfig)
		if errConf != nil {
			fmt.Fprintln(stderr, "config error:", errConf)
			return exitUsage
		}
		conf = fileConf
	}
	if *flagFormat != "" {
		conf.Format = *flagFormat
	}
	if *flagLenient {
		conf.Lenient = true
	}
	if *flagIgnoreRobots {
		conf.IgnoreRobots = true
	}
	if *flagMetrics != "" {
		conf.Addr = *flagMetrics
	}
	if errValidate := conf.Validate(); errValidate != nil {
		fmt.Fprintln(stderr, "config error:", errValidate)
		return exitUsage
	}

	reg := prometheus.NewRegistry()
	r, errReader := motionmodel.NewReader(conf, reg)
	if errReader != nil {
		fmt.Fprintln(stderr, "could not create reader:", errReader)
		return exitUsage
	}

	if conf.Addr != "" {
		fmt.Fprintln(stderr, "serving metrics on", conf.Addr)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			fmt.Fprintln(stderr, http.ListenAndServe(conf.Addr, mux))
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var trace io.Writer
	if *flagTrace {
		trace = stderr
	}
	results := r.ReadAll(ctx, flags.Args(), trace)
	if *flagDump {
		spew.Fdump(stdout, results)
	}
	reports.Print(stdout, results)
	if reports.Summarize(results).Failed > 0 {
		return exitFailure
	}
	return exitOK
}
