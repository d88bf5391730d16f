package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/abmgo/covidabm"
)

func main() {
	reporterType := flag.String("reporter", "csv", "report destination type (csv|sqlite)")
	outPath := flag.String("out", "run.csv", "report output path")
	seed := flag.Int64("seed", time.Now().UTC().UnixNano(), "random seed")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address")
	liveAddr := flag.String("live-addr", "", "if set, serve the live dashboard websocket on this address")
	flag.Parse()

	configPath := flag.Arg(0)
	if configPath == "" {
		log.Fatal("usage: covidabm [flags] <config.toml>")
	}

	params, err := covidabm.LoadParams(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		params.Seed = *seed
	}

	rng := covidabm.NewRNG(params.Seed)
	model := covidabm.NewModel(params, rng)

	var reporter covidabm.Reporter
	switch *reporterType {
	case "csv":
		reporter = covidabm.NewCSVReporter(*outPath)
	case "sqlite":
		reporter = covidabm.NewSQLiteReporter(*outPath)
	default:
		log.Fatalf("%s is not a valid reporter type (csv|sqlite)", *reporterType)
	}
	if err := reporter.Init(); err != nil {
		log.Fatal(err)
	}
	defer reporter.Close()

	var metrics *covidabm.Metrics
	if *metricsAddr != "" {
		metrics = covidabm.NewMetrics()
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", covidabm.MetricsHandler())
			log.Fatal(http.ListenAndServe(*metricsAddr, mux))
		}()
	}

	var live *covidabm.LiveDashboard
	if *liveAddr != "" {
		live = covidabm.NewLiveDashboard()
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/ws", live)
			log.Fatal(http.ListenAndServe(*liveAddr, mux))
		}()
	}

	start := time.Now()
	for t := 0; t < params.EndTime; t++ {
		model.OneTimeStep()
		snap := model.Snapshot()
		if err := reporter.WriteTick(snap); err != nil {
			log.Fatal(err)
		}
		if metrics != nil {
			metrics.Observe(snap)
		}
		if live != nil {
			live.Broadcast(snap)
		}
	}
	log.Printf("completed %d ticks in %s", params.EndTime, time.Since(start))
}
