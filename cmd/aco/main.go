// Command aco runs ant colony searches from the command line.
//
//	aco solve -c problem.yaml          # TSP tour for the cities in a YAML file
//	aco walk grid --rows 3 --cols 4    # Hamiltonian path on a generated topology
//	aco version
//
// Global flags: --log-level, --metrics-out (Prometheus text file written
// after the command), --trace (spans pretty-printed to stderr).
package main

func main() {
	Execute()
}
