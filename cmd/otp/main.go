// Command otp plans minimum-Δv transfers between two orbits around a
// central body. It enumerates candidate orbits and single-burn
// manoeuvres, then runs one of the shortest-path algorithms over the
// resulting graph and prints the burn sequence.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "otp",
	Short: "Orbital transfer pathfinder",
	Long: `otp models orbital states as graph nodes and single-burn manoeuvres
as weighted edges, then finds the minimum-Δv burn sequence between a
start and a target orbit with Dijkstra, A*, or an edge-count tie-breaking
Dijkstra variant.`,
	SilenceUsage: true,
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
