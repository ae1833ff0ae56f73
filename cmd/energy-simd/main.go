package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yeleshwarapu/energy-dashboard/internal/store"
	"github.com/yeleshwarapu/energy-dashboard/internal/webapi"
)

func main() {
	var port int
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "energy-simd",
		Short: "Energy dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				home, _ := os.UserHomeDir()
				dbPath = filepath.Join(home, ".energy-dashboard", "energy.db")
			}
			os.MkdirAll(filepath.Dir(dbPath), 0755)

			st, err := store.NewStore(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer st.Close()

			srv := webapi.NewServer(st)

			addr := fmt.Sprintf(":%d", port)
			log.Printf("Energy dashboard API starting on port %d", port)
			log.Printf("Database: %s", dbPath)
			log.Printf("POST http://localhost:%d/api/simulate to run a simulation", port)

			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	rootCmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Database path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
