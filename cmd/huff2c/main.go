// Command huff2c converts a Freesat Huffman code table (freesat.t1 or
// freesat.t2) into static decoder tables.
//
//	huff2c [flags] INFILE OUTFILE
//
// The dispatch array name is suffixed with the last character of INFILE, so
// freesat.t1 produces huffman_table1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/realh/logi/huffman"
	"github.com/realh/logi/tablefile"
	"github.com/realh/logi/tablegen"
)

const (
	serviceName   = "huff2c"
	logLevelEnv   = "HUFF2C_LOG_LEVEL"
	defaultLogLvl = "INFO"
	defaultFormat = tablegen.FormatCPP
)

var ErrUsage = errors.New("usage: huff2c [flags] INFILE OUTFILE")

type config struct {
	format    string
	suffix    string
	tableName string
	namespace string
	include   string
	goPackage string
	logLevel  string
	inFile    string
	outFile   string
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	level := os.Getenv(logLevelEnv)
	if level == "" {
		level = defaultLogLvl
	}
	fs.StringVar(&cfg.format, "format", string(defaultFormat), "output format: cpp, go or cbor")
	fs.StringVar(&cfg.suffix, "suffix", "", "dispatch array suffix (default: last character of INFILE)")
	fs.StringVar(&cfg.tableName, "name", "", "dispatch array name prefix")
	fs.StringVar(&cfg.namespace, "namespace", "logi", "C++ namespace")
	fs.StringVar(&cfg.include, "include", "si/huffman.h", "C++ header declaring HuffmanNode")
	fs.StringVar(&cfg.goPackage, "package", "freesat", "Go package name")
	fs.StringVar(&cfg.logLevel, "log-level", level, "log level, also read from $"+logLevelEnv)

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 2 {
		return config{}, fmt.Errorf("%w: expected 2 arguments, got %d", ErrUsage, fs.NArg())
	}
	cfg.inFile = fs.Arg(0)
	cfg.outFile = fs.Arg(1)
	if cfg.inFile == "" || cfg.outFile == "" {
		return config{}, fmt.Errorf("%w: empty file name", ErrUsage)
	}
	if cfg.suffix == "" {
		cfg.suffix = cfg.inFile[len(cfg.inFile)-1:]
	}
	if len(cfg.suffix) != 1 {
		return config{}, fmt.Errorf("%w: -suffix must be one character", ErrUsage)
	}
	return cfg, nil
}

func run(cfg config, log logger.Logger) error {
	in, err := os.Open(cfg.inFile)
	if err != nil {
		return err
	}
	defer in.Close()

	tables, err := huffman.Load(in)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.inFile, err)
	}
	flat := tables.Flatten()
	if err := tables.Verify(flat); err != nil {
		return err
	}
	log.Debugf("loaded %d tables from %s", len(tables.Keys()), cfg.inFile)

	opts := []tablegen.Option{
		tablegen.WithNamespace(cfg.namespace),
		tablegen.WithInclude(cfg.include),
		tablegen.WithGoPackage(cfg.goPackage),
	}
	if cfg.tableName != "" {
		opts = append(opts, tablegen.WithTableName(cfg.tableName))
	}
	body, err := tablegen.NewGenerator(log, opts...).Generate(
		tablegen.Format(cfg.format), cfg.suffix[0], flat)
	if err != nil {
		return err
	}

	if err := tablefile.NewWriter(log).WriteFile(cfg.outFile, body); err != nil {
		return err
	}
	log.Infof("%s: %d tables written to %s", cfg.inFile, len(tables.Keys()), cfg.outFile)
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger.New(cfg.logLevel)
	log := logger.Sugar.WithServiceName(serviceName)

	err = run(cfg, log)
	logger.OnExit()
	if err != nil {
		fmt.Fprintln(os.Stderr, "huff2c:", err)
		os.Exit(1)
	}
}
