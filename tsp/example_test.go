package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aco/tsp"
)

// ExampleSolve tours the unit square from city "a".
func ExampleSolve() {
	cities := []tsp.City{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 1, Y: 0},
		{Name: "c", X: 1, Y: 1},
		{Name: "d", X: 0, Y: 1},
	}

	res, err := tsp.Solve(context.Background(), cities, tsp.WithAnts(50), tsp.WithSeed(42), tsp.WithTwoOpt(0))
	if err != nil {
		fmt.Println(err)
		return
	}

	names := res.Names(cities)
	fmt.Printf("length: %.2f\n", res.Length)
	fmt.Println("from:", names[0], "to:", names[len(names)-1], "stops:", len(names)-1)
	// Output:
	// length: 4.00
	// from: a to: a stops: 4
}
