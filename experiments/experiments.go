package experiments

import (
	"fmt"
	"io"
	"os"

	"risksim/experiments/metrics"
	"risksim/game"
	"risksim/simulator"

	"github.com/rs/zerolog/log"
)

const (
	singleRoundHeader = "-------------Attacker vs Defender Single Dice Roll Win Percentages-------------"
	singleRoundFooter = "-------------------------------------------------------------------------------"
	battleHeader      = "--------------Attacker vs Defender Entire Battle Win Percentages---------------"
	battleFooter      = "--------------------------------------------------------------------------------"
)

// Config is one point of a sweep.
type Config struct {
	Attacker int
	Defender int
}

// Grid lists every configuration from (maxAttacker, maxDefender) down to
// (1, 1), attacker-major and descending on both axes.
func Grid(maxAttacker, maxDefender int) []Config {
	configs := []Config{}
	for attacker := maxAttacker; attacker >= 1; attacker-- {
		for defender := maxDefender; defender >= 1; defender-- {
			configs = append(configs, Config{Attacker: attacker, Defender: defender})
		}
	}
	return configs
}

type Driver struct {
	sim *simulator.Simulator
	out io.Writer
}

// NewDriver prints one line per configuration to out, os.Stdout if nil.
func NewDriver(sim *simulator.Simulator, out io.Writer) *Driver {
	if out == nil {
		out = os.Stdout
	}
	return &Driver{
		sim: sim,
		out: out,
	}
}

// RunSingleRoundExperiment sweeps every dice count the rules allow and appends
// one row per configuration to writer.
func (d *Driver) RunSingleRoundExperiment(writer *metrics.Writer, trials int) error {
	rules := d.sim.Rules()
	configs := Grid(rules.MaxAttackTroops(), rules.MaxDefendTroops())

	log.Info().Msgf("starting single round experiment with %d configurations...", len(configs))
	fmt.Fprintln(d.out, singleRoundHeader)

	for _, config := range configs {
		result := d.sim.SingleRound(config.Attacker, config.Defender, trials)
		fmt.Fprintf(d.out, "Attacker with %d dice vs Defender with %d dice: %.2f%%\n",
			result.Attacker, result.Defender, result.WinPercentage)

		logResult(result).
			Float64("exact", 100*game.ExactAttackerWinRate(rules, config.Attacker, config.Defender)).
			Msg("completed single round configuration")

		err := writer.Append(toRow(result))
		if err != nil {
			return fmt.Errorf("failed to store single round result: %w", err)
		}
	}

	fmt.Fprintln(d.out, singleRoundFooter)
	log.Info().Msg("completed single round experiment")
	return nil
}

// RunBattleExperiment sweeps armies from maxArmy down to 1 on both sides and
// appends one row per configuration to writer.
func (d *Driver) RunBattleExperiment(writer *metrics.Writer, trials, maxArmy int) error {
	configs := Grid(maxArmy, maxArmy)

	log.Info().Msgf("starting battle experiment with %d configurations...", len(configs))
	fmt.Fprintln(d.out, battleHeader)

	for _, config := range configs {
		result := d.sim.Battle(config.Attacker, config.Defender, trials)
		fmt.Fprintf(d.out, "Attacker win percentage with %d soldiers vs %d: %.2f%%\n",
			result.Attacker, result.Defender, result.WinPercentage)

		logResult(result).Msg("completed battle configuration")

		err := writer.Append(toRow(result))
		if err != nil {
			return fmt.Errorf("failed to store battle result: %w", err)
		}
	}

	fmt.Fprintln(d.out, battleFooter)
	log.Info().Msg("completed battle experiment")
	return nil
}

func toRow(result simulator.Result) metrics.Row {
	return metrics.Row{
		Attacker:      result.Attacker,
		Defender:      result.Defender,
		WinPercentage: result.WinPercentage,
	}
}
