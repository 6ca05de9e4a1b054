// Package report renders fleet status to the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/skylark-sim/swarmkit/pkg/world"
)

var (
	colorHealthy   = color.New(color.FgGreen)
	colorUnhealthy = color.New(color.FgRed, color.Bold)
	colorLowBatt   = color.New(color.FgYellow)
	colorCritBatt  = color.New(color.FgRed)
	colorMode      = color.New(color.FgCyan)
	colorHeader    = color.New(color.FgWhite, color.Bold)
)

// PrintFleet writes a per-drone status table for the given snapshot.
func PrintFleet(snap world.Snapshot) {
	colorHeader.Printf("t=%.2fs  %d drones\n", snap.Timestamp, len(snap.Drones))
	colorHeader.Printf("%-4s %-9s %-24s %-8s %-8s %s\n", "ID", "MODE", "POSITION", "YAW", "BATTERY", "HEALTH")

	for _, d := range snap.Drones {
		pos := fmt.Sprintf("(%6.2f,%6.2f,%5.2f)", d.Position.X, d.Position.Y, d.Position.Z)
		yaw := fmt.Sprintf("%6.2f", d.Yaw)

		fmt.Printf("%-4d ", d.ID)
		colorMode.Printf("%-9s", d.Mode)
		fmt.Printf(" %-24s %-8s ", pos, yaw)
		batteryColor(d.Battery).Printf("%5.1f%%  ", d.Battery)
		if d.Healthy {
			colorHealthy.Println("OK")
		} else {
			colorUnhealthy.Println("FAULT")
		}
	}
}

// PrintSummary writes a one-line fleet summary for the given snapshot.
func PrintSummary(snap world.Snapshot) {
	healthy := 0
	var battery float64
	modes := make(map[string]int)
	for _, d := range snap.Drones {
		if d.Healthy {
			healthy++
		}
		battery += d.Battery
		modes[d.Mode]++
	}
	if len(snap.Drones) > 0 {
		battery /= float64(len(snap.Drones))
	}

	parts := make([]string, 0, len(modes))
	for mode, n := range modes {
		parts = append(parts, fmt.Sprintf("%d %s", n, mode))
	}

	fmt.Printf("t=%7.2fs  ", snap.Timestamp)
	if healthy == len(snap.Drones) {
		colorHealthy.Printf("%d/%d healthy", healthy, len(snap.Drones))
	} else {
		colorUnhealthy.Printf("%d/%d healthy", healthy, len(snap.Drones))
	}
	fmt.Printf("  avg battery ")
	batteryColor(battery).Printf("%.1f%%", battery)
	fmt.Printf("  [%s]\n", strings.Join(parts, ", "))
}

func batteryColor(pct float64) *color.Color {
	switch {
	case pct < 10:
		return colorCritBatt
	case pct < 30:
		return colorLowBatt
	default:
		return colorHealthy
	}
}
