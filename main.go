package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"risksim/experiments"
	"risksim/experiments/metrics"
	"risksim/meta"
	"risksim/postprocess"
	"risksim/simulator"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	err := metrics.Erase(meta.SINGLE_ROUND_DATA, meta.BATTLE_DATA)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to erase files")
	}

	sim := simulator.NewSimulator(simulator.WithGoroutines(runtime.NumCPU()), simulator.WithMetrics())
	driver := experiments.NewDriver(sim, os.Stdout)

	singleRound, err := metrics.NewWriter(meta.SINGLE_ROUND_DATA)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create single round writer")
	}
	err = driver.RunSingleRoundExperiment(singleRound, meta.SINGLE_ROUND_TRIALS)
	if err != nil {
		log.Fatal().Err(err).Msg("error handling single round data")
	}

	battle, err := metrics.NewWriter(meta.BATTLE_DATA)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create battle writer")
	}
	err = driver.RunBattleExperiment(battle, meta.BATTLE_TRIALS, meta.MAX_ARMY)
	if err != nil {
		log.Fatal().Err(err).Msg("error handling battle data")
	}

	runScript()
}

// runScript hands the result files over to the charting script.
func runScript() {
	workDir, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve working directory")
	}

	out, err := postprocess.NewScript(workDir).Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error executing python script")
	}
	if len(out) > 0 {
		fmt.Printf("Python script output: %s\n", out)
	}
}
