package main

import (
	"fmt"
	"os"
	"time"

	"oddcalc/combat"
	"oddcalc/config"
	"oddcalc/experiments"
	"oddcalc/game"
	"oddcalc/meta"
	"oddcalc/server"
	"oddcalc/simulator"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfg         config.Config
	fort        bool
	ark         bool
	showLog     bool
	simulations int
	goroutines  int
	defenders   int
	maxAttack   int
	addr        string
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(cfg.Level())

	rootCmd := &cobra.Command{
		Use:   "oddcalc <attacker> <defender>",
		Short: "Attacker win odds for unit and hero combat",
		Long: `Estimates the chance that an attacker beats a defender by simulating
the battle many times. A combatant is a unit count ("10") or a hero
given as attack and health ("12,10").`,
		Args:         cobra.ExactArgs(2),
		RunE:         runOdds,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&fort, "fort", false, "Defender is fortified")
	rootCmd.PersistentFlags().BoolVar(&ark, "ark", false, "Attacker counters the fortification")
	rootCmd.PersistentFlags().IntVarP(&simulations, "simulations", "s", cfg.Simulations, "Number of simulated battles")
	rootCmd.PersistentFlags().IntVarP(&goroutines, "goroutines", "g", cfg.Goroutines, "Number of goroutines sharing the battles")
	rootCmd.Flags().BoolVarP(&showLog, "log", "l", false, "Print the combat log (runs on one goroutine)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Win odds of 1..max attackers against a fixed defender count",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVarP(&defenders, "defenders", "d", meta.SWEEP_DEFENDERS, "Fixed defender count")
	sweepCmd.Flags().IntVarP(&maxAttack, "max", "m", meta.SWEEP_MAX_ATTACKERS, "Largest attacker count")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", cfg.Addr, "Listen address")

	rootCmd.AddCommand(sweepCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOdds(cmd *cobra.Command, args []string) error {
	attacker, err := game.ParseCombatant(args[0])
	if err != nil {
		return fmt.Errorf("attacker: %w", err)
	}
	defender, err := game.ParseCombatant(args[1])
	if err != nil {
		return fmt.Errorf("defender: %w", err)
	}

	workers := goroutines
	if showLog {
		workers = 1
	}

	calc := combat.NewCalculator(
		combat.WithFortification(fort),
		combat.WithCounterFortification(ark),
		combat.WithLogging(showLog),
	)
	result, metric, err := simulator.NewSimulator(workers, simulator.WithTrials(simulations), simulator.WithMetrics()).
		Simulate(calc, attacker, defender)
	if err != nil {
		return err
	}
	log.Debug().Msgf("%d trials in %s (%.0f trials/s)", metric.Trials, metric.Duration, metric.TrialsPerSecond())

	color.New(color.FgGreen, color.Bold).Println(result.String())
	if showLog {
		fmt.Print(calc.Log().String())
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := experiments.SweepConfig{
		Defenders:    defenders,
		MaxAttackers: maxAttack,
		Trials:       simulations,
		Goroutines:   goroutines,
		Fort:         fort,
		Ark:          ark,
	}

	start := time.Now()
	points, err := experiments.RunSweep(sweep, nil)
	if err != nil {
		return err
	}
	end := time.Now()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Attackers", "Defenders", "Wins", "Trials", "Odds"}),
	)
	for _, point := range points {
		table.Append([]string{
			fmt.Sprintf("%d", point.Attackers),
			fmt.Sprintf("%d", point.Defenders),
			fmt.Sprintf("%d", point.AttackerWins),
			fmt.Sprintf("%d", point.TotalTrials),
			point.ToPercent() + "%",
		})
	}
	table.Render()

	writer, err := experiments.NewWriter(cfg.OutputDir, "sweep")
	if err != nil {
		return err
	}
	if err := writer.WriteSetup(sweep, start, end); err != nil {
		return err
	}
	if err := writer.WritePoints(points); err != nil {
		return err
	}
	log.Info().Msgf("stored sweep in %s", writer.Dir())
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	return server.New(goroutines, server.WithTrials(simulations)).ListenAndServe(addr)
}
