// Command jgenetics solves the knapsack problem described by a TOML file with the genetic
// algorithm, reporting every iteration to the configured sinks.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/google/uuid"
	natsgo "github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dariuszzbyrad/jgenetics/algorithm"
	"github.com/dariuszzbyrad/jgenetics/genetic"
	"github.com/dariuszzbyrad/jgenetics/knapsack"
	"github.com/dariuszzbyrad/jgenetics/logger"
	"github.com/dariuszzbyrad/jgenetics/parameters"
	"github.com/dariuszzbyrad/jgenetics/report"
	"github.com/dariuszzbyrad/jgenetics/server"
	"github.com/dariuszzbyrad/jgenetics/storage/runs"
)

type options struct {
	config      string
	seed        int64
	seedSet     bool
	report      string
	xlsx        string
	plot        string
	listen      string
	nats        string
	subject     string
	sqlite      string
	dynamoTable string
	region      string
	resume      string
	logLevel    string
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("jgenetics", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.config, "config", "", "TOML file with the parameters and the [knapsack] table")
	fs.Int64Var(&o.seed, "seed", 0, "seed of the random source, overrides the configuration")
	fs.StringVar(&o.report, "report", "", "directory of the text report, enables it")
	fs.StringVar(&o.xlsx, "xlsx", "", "write the iteration statistics to this spreadsheet")
	fs.StringVar(&o.plot, "plot", "", "plot the iteration statistics to this image (png, svg, pdf)")
	fs.StringVar(&o.listen, "listen", "", "serve health, metrics, status and runs on this address")
	fs.StringVar(&o.nats, "nats", "", "publish iteration events to this NATS server")
	fs.StringVar(&o.subject, "subject", report.DefaultSubject, "NATS subject of the iteration events")
	fs.StringVar(&o.sqlite, "sqlite", "", "store the run in this SQLite database")
	fs.StringVar(&o.dynamoTable, "dynamo-table", "", "store the run in this DynamoDB table")
	fs.StringVar(&o.region, "region", "us-east-1", "AWS region of the DynamoDB table")
	fs.StringVar(&o.resume, "resume", "", "start from the last population of this stored run")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	if o.sqlite != "" && o.dynamoTable != "" {
		return nil, errors.New("-sqlite and -dynamo-table are exclusive")
	}

	return o, nil
}

func load(o *options) (*parameters.Parameters, *knapsack.Problem, error) {
	if o.config == "" {
		p := parameters.Default()
		if o.seedSet {
			p.Seed = o.seed
		}
		return p, knapsack.Default(), nil
	}

	p, err := parameters.Load(o.config)
	if err != nil {
		return nil, nil, err
	}
	problem, err := knapsack.Load(o.config)
	if err != nil {
		return nil, nil, err
	}
	if o.seedSet {
		p.Seed = o.seed
	}
	if problem.Items() != p.SizeOfChromosome {
		return nil, nil, fmt.Errorf("%w: the knapsack has %d items but chromosomes have %d genes",
			genetic.ErrorInvalidArgument, problem.Items(), p.SizeOfChromosome)
	}

	return p, problem, nil
}

func openStorage(o *options) (runs.Storage, func() error, error) {
	switch {
	case o.sqlite != "":
		storage, db, err := runs.OpenSQLite(o.sqlite)
		if err != nil {
			return nil, nil, err
		}
		return storage, db.Close, nil
	case o.dynamoTable != "":
		sess, err := session.NewSession(&aws.Config{Region: aws.String(o.region)})
		if err != nil {
			return nil, nil, err
		}
		return runs.New(sess, o.dynamoTable), func() error { return nil }, nil
	}

	return nil, func() error { return nil }, nil
}

func initialPopulation(storage runs.Storage, id string) (*genetic.Population, error) {
	if storage == nil {
		return nil, errors.New("-resume needs -sqlite or -dynamo-table")
	}
	stored, err := storage.GetRun(id)
	if err != nil {
		return nil, err
	}
	chromosomes := make([]genetic.Chromosome, 0, len(stored.Population))
	for _, g := range stored.Population {
		chromosomes = append(chromosomes, genetic.NewChromosome(g))
	}

	return genetic.NewPopulation(chromosomes...), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log, err := logger.New(stderr, o.logLevel)
	if err != nil {
		return err
	}
	p, problem, err := load(o)
	if err != nil {
		return err
	}
	storage, closeStorage, err := openStorage(o)
	if err != nil {
		return err
	}
	defer closeStorage()

	id := uuid.NewString()
	log = log.With("run", id)
	registry := prometheus.NewRegistry()
	metrics, err := report.NewMetrics(registry)
	if err != nil {
		return err
	}
	status := server.NewStatus(id)
	reporters := []report.Reporter{metrics, status}

	if p.SaveReport || o.report != "" {
		dir := o.report
		if dir == "" {
			dir = "."
		}
		text, err := report.CreateTextFile(dir, time.Now())
		if err != nil {
			return err
		}
		defer text.Close()
		log.Info("writing the text report", "file", text.Name())
		reporters = append(reporters, text)
	}
	var spreadsheet *report.Spreadsheet
	if o.xlsx != "" {
		if spreadsheet, err = report.NewSpreadsheet(); err != nil {
			return err
		}
		defer spreadsheet.Close()
		reporters = append(reporters, spreadsheet)
	}
	var plot *report.Plot
	if o.plot != "" {
		plot = report.NewPlot("Knapsack fitness")
		reporters = append(reporters, plot)
	}
	if o.nats != "" {
		nc, err := natsgo.Connect(o.nats, natsgo.Name("jgenetics"))
		if err != nil {
			return err
		}
		defer nc.Close()
		reporters = append(reporters, report.NewPublisher(nc, o.subject, id))
	}

	var srv *httpServer
	if o.listen != "" {
		if srv, err = listen(o.listen, server.New(status, registry, storage)); err != nil {
			return err
		}
		defer srv.Close()
		log.Info("listening", "address", srv.Addr())
	}

	opts := []algorithm.Option{
		algorithm.WithID(id),
		algorithm.WithLogger(log),
		algorithm.WithReporter(report.Multi(reporters...)),
	}
	if o.resume != "" {
		initial, err := initialPopulation(storage, o.resume)
		if err != nil {
			return err
		}
		opts = append(opts, algorithm.WithInitialPopulation(initial))
	}
	a, err := algorithm.New(p, opts...)
	if err != nil {
		return err
	}
	result, err := a.Run(ctx, problem.Fitness())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "The best chromosome: %s fitness=%v iterations=%d\n",
		result.Best.Genome(), result.Best.Fitness(), result.Iterations)

	if spreadsheet != nil {
		if err := spreadsheet.SaveAs(o.xlsx); err != nil {
			return err
		}
	}
	if plot != nil {
		if err := plot.Save(o.plot); err != nil {
			return err
		}
	}
	if storage != nil {
		if err := storage.StoreRun(result.Run(time.Now())); err != nil {
			return err
		}
		log.Info("run stored")
	}

	if srv != nil {
		log.Info("serving until interrupted", "address", srv.Addr())
		select {
		case <-ctx.Done():
		case err := <-srv.Errors():
			return err
		}
	}

	return nil
}

// httpServer is the status server bound before the run starts
type httpServer struct {
	srv  *http.Server
	ln   net.Listener
	errs chan error
}

// listen binds addr right away so a busy port fails the command instead of the run
func listen(addr string, handler http.Handler) (*httpServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &httpServer{
		srv:  &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second},
		ln:   ln,
		errs: make(chan error, 1),
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.errs <- err
		}
	}()

	return s, nil
}

// Addr is the bound address, useful with port 0
func (s *httpServer) Addr() string {
	return s.ln.Addr().String()
}

// Errors delivers the error that stopped serving
func (s *httpServer) Errors() <-chan error {
	return s.errs
}

// Close shuts the server down, waiting up to 5 seconds for open requests
func (s *httpServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.srv.Shutdown(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("jgenetics failed", "error", err)
		}
		stop()
		os.Exit(1)
	}
}
