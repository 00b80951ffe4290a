package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/scottcagno/hashmap/pkg/config"
	"github.com/scottcagno/hashmap/pkg/logging"
)

var log = logging.MustGetLogger("main")

type Options struct {
	Config   string `short:"c" long:"config" description:"path to a YAML config file"`
	EnvFile  string `short:"e" long:"env-file" description:"path to a .env file"`
	LogLevel string `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

var opts Options

var modeCmd ModeCommand
var statsCmd StatsCommand
var dumpCmd DumpCommand

var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.AddCommand("mode",
		"find the most frequent values",
		"The mode command prints the value(s) occurring most often in its arguments or in a file",
		&modeCmd)
	parser.AddCommand("stats",
		"fill a table with random keys and report on it",
		"The stats command fills the configured table with random keys, removes some of them and prints the table metrics",
		&statsCmd)
	parser.AddCommand("dump",
		"print the slot layout of a table",
		"The dump command puts every key=value argument into the configured table and prints each slot",
		&dumpCmd)

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration from the global options and sets
// up logging accordingly
func loadConfig() (*config.Config, error) {
	conf, err := config.Load(opts.Config, opts.EnvFile)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		conf.LogLevel = opts.LogLevel
		if err := conf.CheckConfig(); err != nil {
			return nil, err
		}
	}
	if err := logging.SetupDefault(conf.LogLevel); err != nil {
		return nil, err
	}
	log.Debugf("using %s table, capacity %d, hash %s", conf.Variant, conf.Capacity, conf.Hash)
	return conf, nil
}
