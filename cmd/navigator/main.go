// Command navigator is the interactive console front-end: pick a scenario,
// pick endpoints, optionally watch the frontier settle step by step, then get
// the route breakdown and trip estimate. All rendering lives here; the engine
// only reports steps through its observer hook.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/lakbayph/lakbay/pkg/guidance"
	"github.com/lakbayph/lakbay/pkg/scenario"
)

var (
	stepDelay = flag.Duration("delay", 800*time.Millisecond, "delay between animation steps")
	showSteps = flag.Bool("steps", true, "show the search step by step")
)

func main() {
	flag.Parse()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("LAKBAY - Philippine Highway Navigator")
	fmt.Println("Minimum-cost routing over Luzon expressways (uniform cost search)")
	fmt.Println(strings.Repeat("=", 72))

	scenarios := scenario.BuiltIn()
	fmt.Println("\nAvailable highway scenarios:")
	for i, sc := range scenarios {
		fmt.Printf("%d. %s\n", i+1, sc.Name)
	}

	choice, err := promptInt(in, fmt.Sprintf("\nSelect scenario (1-%d): ", len(scenarios)))
	if err != nil || choice < 1 || choice > len(scenarios) {
		fmt.Println("invalid selection")
		return
	}
	selected := scenarios[choice-1]

	graph, err := selected.Build()
	if err != nil {
		fmt.Printf("could not build scenario: %v\n", err)
		return
	}

	fmt.Printf("\nSelected: %s\n", selected.Name)
	fmt.Println("\nAvailable locations:")
	for _, id := range graph.LocationIDs() {
		fmt.Printf("  %s: %s\n", id, graph.LocationName(id))
	}

	start := promptString(in, "\nEnter starting location ID: ")
	goal := promptString(in, "Enter destination location ID: ")

	displayNetwork(graph, nil, "")

	fmt.Printf("\nCalculating optimal route from %s to %s...\n",
		graph.LocationName(start), graph.LocationName(goal))

	engine := routing.NewUniformCostSearch(graph)

	var observe routing.StepFunc
	if *showSteps {
		observe = func(step routing.Step) {
			clearScreen()
			fmt.Printf("STEP %d: exploring %s\n", step.Seq, graph.LocationName(step.Location))
			fmt.Printf("Current cost: %.1f units\n", step.Cost)
			fmt.Printf("Current path: %s\n", pathDisplay(graph, step.Path))
			fmt.Printf("Frontier size: %d | Locations settled: %d\n", step.FrontierSize, step.Settled)
			last := step.Path.Last()
			fmt.Printf("Total distance: %.0f km | Total tolls: PHP %.0f\n", last.Distance, last.Toll)
			displayNetwork(graph, nil, step.Location)
			time.Sleep(*stepDelay)
		}
	}

	route, found, err := engine.SearchWithObserver(start, goal, observe)
	if err != nil {
		fmt.Println("Error: start or goal location not found in the highway network")
		return
	}
	if !found {
		fmt.Printf("\nNo highway route found from %s to %s\n",
			graph.LocationName(start), graph.LocationName(goal))
		return
	}

	analyzeRoute(graph, route)
	displayNetwork(graph, route, "")
}

func promptInt(in *bufio.Scanner, prompt string) (int, error) {
	fmt.Print(prompt)
	if !in.Scan() {
		return 0, fmt.Errorf("no input")
	}
	return strconv.Atoi(strings.TrimSpace(in.Text()))
}

func promptString(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(in.Text()))
}

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

func pathDisplay(graph *datastructure.Graph, path datastructure.Path) string {
	parts := make([]string, 0, path.Len())
	for _, wp := range path.Waypoints() {
		parts = append(parts, fmt.Sprintf("%s(%.1f)", graph.LocationName(wp.Location), wp.Cost))
	}
	return strings.Join(parts, " -> ")
}

func displayNetwork(graph *datastructure.Graph, route *datastructure.Route, current string) {
	onRoute := make(map[string]bool)
	if route != nil {
		for _, loc := range route.GetPath().Locations() {
			onRoute[loc] = true
		}
	}

	fmt.Println("\n" + strings.Repeat("-", 72))
	fmt.Println("Highway Network:")
	for _, id := range graph.LocationIDs() {
		status := ""
		switch {
		case onRoute[id]:
			status = " [ROUTE]"
		case id == current:
			status = " [CURRENT]"
		}
		fmt.Printf("%s (%s)%s\n", graph.LocationName(id), id, status)

		for _, e := range graph.EdgesFrom(id) {
			via := ""
			if e.GetHighway() != "" {
				via = fmt.Sprintf(" via %s", e.GetHighway())
			}
			fmt.Printf("  -> %s: cost=%.1f (%.0f km, traffic=%.1fx, toll=PHP %.0f)%s\n",
				graph.LocationName(e.GetTo()), e.GetCost(), e.GetDistance(),
				e.GetTraffic(), e.GetToll(), via)
		}
	}
	fmt.Println(strings.Repeat("-", 72))
}

func analyzeRoute(graph *datastructure.Graph, route *datastructure.Route) {
	fmt.Println("\n" + strings.Repeat("=", 72))
	fmt.Println("ROUTE ANALYSIS")
	fmt.Println(strings.Repeat("=", 72))

	fmt.Printf("Total optimization cost: %.2f units\n", route.GetTotalCost())
	fmt.Printf("Total distance: %.0f km\n", route.GetTotalDistance())
	fmt.Printf("Total toll fees: PHP %.2f\n", route.GetTotalToll())
	fmt.Printf("Route includes %d locations\n", route.GetPath().Len())

	fmt.Println("\nDetailed route:")
	waypoints := route.GetPath().Waypoints()
	fmt.Printf("   1. START: %s\n", graph.LocationName(waypoints[0].Location))
	for i, seg := range route.GetPath().Segments() {
		fmt.Printf("   %d. %s\n", i+2, graph.LocationName(seg.To))
		fmt.Printf("       Via: %s\n", seg.Highway)
		fmt.Printf("       Segment: %.0f km, PHP %.0f toll, cost +%.2f\n",
			seg.Distance, seg.Toll, seg.Cost)
		cum := waypoints[i+1]
		fmt.Printf("       Total so far: %.0f km, PHP %.0f, cost %.2f\n",
			cum.Distance, cum.Toll, cum.Cost)
	}

	estimate := guidance.NewTripEstimate(route.GetTotalDistance(), route.GetTotalToll())
	hours, minutes := estimate.HoursMinutes()
	fmt.Println("\nEstimated travel information:")
	fmt.Printf("   Travel time: %.1f hours (%dh %dmin)\n", estimate.Hours, hours, minutes)
	fmt.Printf("   Estimated fuel cost: PHP %.0f\n", estimate.FuelCostPhp)
	fmt.Printf("   Total trip cost: PHP %.0f (tolls + fuel)\n", estimate.TripCostPhp)

	fmt.Println("\nDriving directions:")
	for _, d := range guidance.NewItineraryBuilder(graph).GetDrivingDirections(route) {
		fmt.Printf("   - %s\n", d.Instruction)
	}

	fmt.Println("\nNetwork analysis:")
	fmt.Printf("   Total locations: %d\n", graph.NumLocations())
	fmt.Printf("   Total highway connections: %d\n", graph.NumHighways())
}
