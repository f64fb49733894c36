// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/okzk/sdnotify"

	"github.com/raistlinbot/raistlin/irc"
	"github.com/raistlinbot/raistlin/irc/logger"
	"github.com/raistlinbot/raistlin/irc/utils"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

// implements the `raistlin check` command
func doCheck(config *irc.Config, text string) {
	model, err := irc.TrainModel(config.Corpus, logger.NewWriterManager(os.Stderr, logger.LogError))
	if err != nil {
		log.Fatal("Could not train the model: ", err.Error())
	}
	for _, note := range model.CorrectAll(text) {
		fmt.Println(note)
	}
}

// implements the `raistlin history` command
func doHistory(config *irc.Config, channel string) {
	history, err := irc.OpenHistory(config.Datastore, config.History)
	if err != nil {
		log.Fatal("Could not open the datastore: ", err.Error())
	}
	defer history.Close()
	notes, err := history.Recent(channel)
	if err != nil {
		log.Fatal("Could not read the datastore: ", err.Error())
	}
	for _, note := range notes {
		fmt.Println(note)
	}
}

// implements the `raistlin run` command
func doRun(config *irc.Config, logman *logger.Manager, quiet bool) (err error) {
	if !quiet {
		logman.Info(logger.TypeBot, fmt.Sprintf("%s starting", irc.Ver))
	}

	model, err := irc.TrainModel(config.Corpus, logman)
	if err != nil {
		return fmt.Errorf("Could not train the model: %w", err)
	}

	history, err := irc.OpenHistory(config.Datastore, config.History)
	if err != nil {
		return fmt.Errorf("Could not open the datastore: %w", err)
	}
	defer history.Close()

	ctx, stop := signal.NotifyContext(context.Background(), utils.ExitSignals...)
	defer stop()

	metrics := irc.NewMetrics()
	bot := irc.NewBot(config, model, history, metrics, logman)
	if config.Metrics.Listen != "" {
		go func() {
			defer bot.HandlePanic()
			if err := metrics.Serve(ctx, config.Metrics.Listen, logman); err != nil {
				logman.Error(logger.TypeMetrics, "metrics listener failed", err.Error())
			}
		}()
	}

	err = bot.Run(ctx)
	sdnotify.Stopping()
	if err == nil && !quiet {
		logman.Info(logger.TypeBot, "shutting down")
	}
	return err
}

func main() {
	irc.SetVersionString(version, commit)
	usage := `raistlin.
Usage:
	raistlin run [--conf <filename>] [--quiet]
	raistlin check [--conf <filename>] <text>...
	raistlin history [--conf <filename>] <channel>
	raistlin -h | --help
	raistlin --version
Options:
	--conf <filename>  Configuration file to use [default: raistlin.yaml].
	--quiet            Don't show startup/shutdown lines.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, irc.Ver)

	configfile := arguments["--conf"].(string)
	config, err := irc.LoadConfig(configfile)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}

	if arguments["check"].(bool) {
		doCheck(config, strings.Join(arguments["<text>"].([]string), " "))
		return
	} else if arguments["history"].(bool) {
		doHistory(config, arguments["<channel>"].(string))
		return
	}

	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}
	defer logman.Close()

	if arguments["run"].(bool) {
		if err := doRun(config, logman, arguments["--quiet"].(bool)); err != nil {
			logman.Error(logger.TypeBot, err.Error())
			logman.Close()
			os.Exit(1)
		}
	}
}
