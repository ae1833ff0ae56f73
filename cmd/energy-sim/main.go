package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeleshwarapu/energy-dashboard/internal/analytics"
	"github.com/yeleshwarapu/energy-dashboard/internal/building"
	"github.com/yeleshwarapu/energy-dashboard/internal/sim"
	"github.com/yeleshwarapu/energy-dashboard/internal/store"
)

var (
	cfgFile string
	dbPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "energy-sim",
		Short: "Simulate residential energy consumption and analyze the result",
		Long: `energy-sim runs a deterministic time-series simulation of a home's
energy use across HVAC, lighting, appliances, EV charging and solar
generation, then reports peak load, subsystem shares, solar offset,
cost and recommendations.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.energy-dashboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default is $HOME/.energy-dashboard/energy.db)")

	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(seasonsCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(scenarioCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".energy-dashboard")
		os.MkdirAll(configDir, 0755)

		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()

	if dbPath == "" {
		if viper.IsSet("db") {
			dbPath = viper.GetString("db")
		} else {
			home, _ := os.UserHomeDir()
			dbPath = filepath.Join(home, ".energy-dashboard", "energy.db")
		}
	}
}

func simulateCmd() *cobra.Command {
	var (
		season     string
		step       int
		days       int
		setpoint   float64
		chillerMax float64
		solarKW    float64
		output     string
		record     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulation and print the analytics summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := building.Config{
				Season:          building.Season(season),
				StepMinutes:     step,
				Days:            days,
				HVACSetpointC:   setpoint,
				ChillerMaxKW:    chillerMax,
				SolarCapacityKW: solarKW,
			}

			res, err := sim.Run(cfg)
			if err != nil {
				return err
			}
			summary, err := analytics.Summarize(res)
			if err != nil {
				return err
			}

			if record {
				st, err := store.NewStore(dbPath)
				if err != nil {
					return fmt.Errorf("opening database: %w", err)
				}
				defer st.Close()
				if _, err := st.RecordRun("", cfg, summary); err != nil {
					return fmt.Errorf("recording run: %w", err)
				}
			}

			if output == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			printSummary(cfg, summary)
			return nil
		},
	}

	defaults := building.DefaultConfig()
	cmd.Flags().StringVarP(&season, "season", "s", string(defaults.Season), "season (spring, summer, fall, winter)")
	cmd.Flags().IntVar(&step, "step", defaults.StepMinutes, "step size in minutes (15 or 60)")
	cmd.Flags().IntVarP(&days, "days", "d", defaults.Days, "simulation horizon in days (1 or 7)")
	cmd.Flags().Float64Var(&setpoint, "setpoint", defaults.HVACSetpointC, "HVAC thermostat setpoint (°C)")
	cmd.Flags().Float64Var(&chillerMax, "chiller-max", defaults.ChillerMaxKW, "chiller maximum power (kW)")
	cmd.Flags().Float64Var(&solarKW, "solar-kw", defaults.SolarCapacityKW, "rated solar panel capacity (kW)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table or json)")
	cmd.Flags().BoolVar(&record, "record", false, "save the run summary to the history database")

	return cmd
}

func printSummary(cfg building.Config, s *analytics.Summary) {
	fmt.Printf("Season: %s  |  %d day(s) at %d-minute steps\n\n", cfg.Season, cfg.Days, cfg.StepMinutes)
	fmt.Printf("Peak load: %.2f kW (%s) on day %d at %02d:%02d\n",
		s.Peak.KW, s.Peak.Category, s.Peak.Step.Day,
		int(s.Peak.Step.HourOfDay), int(s.Peak.Step.HourOfDay*60)%60)

	fmt.Println("\nSubsystem energy share:")
	for _, cs := range s.Shares {
		if cs.KWh == 0 {
			continue
		}
		fmt.Printf("  %-15s %8.2f kWh  %5.1f%%\n", cs.Category, cs.KWh, cs.Percent)
		for _, c := range cs.Components {
			if c.KWh == 0 {
				continue
			}
			fmt.Printf("    %-13s %8.2f kWh  %5.1f%%\n", c.Subsystem.Component, c.KWh, c.Percent)
		}
	}

	fmt.Printf("\nTotal energy consumed: %.1f kWh\n", s.TotalEnergyKWh)
	fmt.Printf("Solar generated: %.1f kWh (%.1f%% offset)\n", s.SolarKWh, s.SolarOffsetPct)
	fmt.Printf("Total cost: ₹%.0f (₹%.0f/kWh)\n", s.TotalCost, s.PricePerKWh)

	fmt.Println("\nRecommendations:")
	for _, rec := range s.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func seasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List the seasonal profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-8s %12s %12s %12s %10s %10s\n", "SEASON", "TEMP MIN °C", "TEMP MAX °C", "SOLAR HRS", "₹/KWH", "MODE")
			for _, season := range building.Seasons() {
				p, err := building.ProfileFor(season)
				if err != nil {
					return err
				}
				fmt.Printf("%-8s %12.0f %12.0f %12.0f %10.0f %10s\n",
					p.Season, p.MinTempC, p.MaxTempC, p.SolarHours, p.PricePerKWh, p.Mode)
			}
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the scenario database with a default scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			sc := &store.Scenario{
				ID:     "default",
				Name:   "Summer Day",
				Config: building.DefaultConfig(),
			}
			if err := st.SaveScenario(sc); err != nil {
				return err
			}

			fmt.Println("✓ Initialized default scenario")
			fmt.Printf("Database: %s\n", dbPath)
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Run it: energy-sim scenario run default")
			fmt.Println("  2. Or simulate directly: energy-sim simulate --season winter --days 7")

			return nil
		},
	}
}

func scenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage saved simulation scenarios",
	}

	cmd.AddCommand(scenarioAddCmd())
	cmd.AddCommand(scenarioListCmd())
	cmd.AddCommand(scenarioDeleteCmd())
	cmd.AddCommand(scenarioRunCmd())

	return cmd
}

func scenarioAddCmd() *cobra.Command {
	var (
		name       string
		season     string
		step       int
		days       int
		setpoint   float64
		chillerMax float64
		solarKW    float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := building.Config{
				Season:          building.Season(season),
				StepMinutes:     step,
				Days:            days,
				HVACSetpointC:   setpoint,
				ChillerMaxKW:    chillerMax,
				SolarCapacityKW: solarKW,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			st, err := store.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			sc := &store.Scenario{
				ID:     fmt.Sprintf("%s-%d", name, time.Now().Unix()),
				Name:   name,
				Config: cfg,
			}
			if err := st.SaveScenario(sc); err != nil {
				return err
			}

			fmt.Printf("✓ Added scenario: %s\n", name)
			fmt.Printf("  ID: %s\n", sc.ID)
			fmt.Printf("  %s, %d day(s), %d-minute steps\n", cfg.Season, cfg.Days, cfg.StepMinutes)

			return nil
		},
	}

	defaults := building.DefaultConfig()
	cmd.Flags().StringVarP(&name, "name", "n", "", "Scenario name (required)")
	cmd.Flags().StringVarP(&season, "season", "s", string(defaults.Season), "season")
	cmd.Flags().IntVar(&step, "step", defaults.StepMinutes, "step size in minutes")
	cmd.Flags().IntVarP(&days, "days", "d", defaults.Days, "horizon in days")
	cmd.Flags().Float64Var(&setpoint, "setpoint", defaults.HVACSetpointC, "HVAC setpoint (°C)")
	cmd.Flags().Float64Var(&chillerMax, "chiller-max", defaults.ChillerMaxKW, "chiller maximum power (kW)")
	cmd.Flags().Float64Var(&solarKW, "solar-kw", defaults.SolarCapacityKW, "solar capacity (kW)")

	cmd.MarkFlagRequired("name")

	return cmd
}

func scenarioListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			scenarios, err := st.ListScenarios()
			if err != nil {
				return err
			}

			if len(scenarios) == 0 {
				fmt.Println("No scenarios saved")
				return nil
			}

			fmt.Printf("%-25s %-25s %-8s %6s %6s %10s\n", "NAME", "ID", "SEASON", "DAYS", "STEP", "SETPOINT")
			for _, sc := range scenarios {
				fmt.Printf("%-25s %-25s %-8s %6d %5dm %9.1f°\n",
					sc.Name, sc.ID, sc.Config.Season, sc.Config.Days, sc.Config.StepMinutes, sc.Config.HVACSetpointC)
			}

			return nil
		},
	}
}

func scenarioDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteScenario(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted scenario: %s\n", args[0])
			return nil
		},
	}
}

func scenarioRunCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Run a saved scenario and record the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			sc, err := st.GetScenario(args[0])
			if err != nil {
				return fmt.Errorf("scenario not found: %s (run 'energy-sim init' first)", args[0])
			}

			res, err := sim.Run(sc.Config)
			if err != nil {
				return err
			}
			summary, err := analytics.Summarize(res)
			if err != nil {
				return err
			}

			if _, err := st.RecordRun(sc.ID, sc.Config, summary); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", err)
			}

			if output == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			printSummary(sc.Config, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table or json)")

	return cmd
}
