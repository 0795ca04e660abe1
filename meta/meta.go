// meta/meta.go
package meta

// SINGLE_ROUND_TRIALS defines the number of dice throws per single-round configuration.
const SINGLE_ROUND_TRIALS = 10_000_000

// BATTLE_TRIALS defines the number of battles per army configuration.
const BATTLE_TRIALS = 100_000

// MAX_ARMY defines the largest army of the battle sweep, for both sides.
const MAX_ARMY = 20

// Result files, relative to the working directory.
const (
	SINGLE_ROUND_DATA = "data/simulation_data.csv"
	BATTLE_DATA       = "data/battle_simulation_data.csv"
)

// Post-processing script and the interpreter that runs it, relative to the working directory.
const (
	PYTHON_PATH = "myenv/scripts/python.exe"
	SCRIPT_PATH = "python/main.py"
)
