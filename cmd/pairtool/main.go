/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mikeb26/chesspair/roundrobin"
	"github.com/mikeb26/chesspair/swiss"
	"github.com/mikeb26/chesspair/tourney"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"new":       handleNew,
	"add":       handleAdd,
	"players":   handlePlayers,
	"pair":      handlePair,
	"result":    handleResult,
	"finish":    handleFinish,
	"standings": handleStandings,
	"undo":      handleUndo,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(args []string) {
	usage()
}

func handleNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	name := fs.String("name", "", "Tournament name")
	system := fs.String("system", "swiss", "Pairing system (swiss or round-robin)")
	rounds := fs.Int("rounds", 5, "Total rounds")
	rated := fs.Bool("rated", false, "Apply Elo rating updates on round completion")
	bye := fs.Float64("bye", 1.0, "Points awarded for a bye (0, 0.5, or 1)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	var sys tourney.System
	switch *system {
	case "swiss":
		sys = tourney.SystemSwiss
	case "round-robin":
		sys = tourney.SystemRoundRobin
	default:
		log.Fatalf("Unknown pairing system %q", *system)
	}

	t := tourney.NewTournament(*name, sys, *rounds, *rated)
	t.ByeValue = *bye
	if err := tourney.Validate(t); err != nil {
		log.Fatalf("Invalid tournament configuration: %v", err)
	}
	saveTournament(*file, t)
	fmt.Printf("Created %v tournament %v (%v rounds)\n", sys, t.ID,
		t.TotalRounds)
}

func handleAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	name := fs.String("name", "", "Player name")
	rating := fs.Int("rating", 0, "Player rating")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" {
		log.Fatalf("Player name is required")
	}

	t := loadTournament(*file)
	p := t.AddPlayer(*name, *rating)
	saveTournament(*file, t)
	fmt.Printf("Added %v (%v) as %v\n", p.Name, p.Rating, p.ID)
}

func handlePlayers(args []string) {
	fs := flag.NewFlagSet("players", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	t := loadTournament(*file)
	fmt.Print(tourney.BuildPlayersOutput(t))
}

func handlePair(args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	round := fs.Int("round", 0, "Round-robin round to generate (1-based; 0 selects the next round)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	t := loadTournament(*file)
	var pairings []tourney.Pairing
	var err error
	if t.System == tourney.SystemRoundRobin {
		pairings, err = roundrobin.GeneratePairings(t, *round-1)
	} else {
		pairings, err = swiss.GeneratePairings(t)
	}
	if err != nil {
		log.Fatalf("Error generating pairings: %v", err)
	}

	rnd := tourney.OpenRound(t, pairings)
	saveTournament(*file, t)
	fmt.Print(tourney.BuildPairingsOutput(t, rnd.RoundNumber, pairings))
}

func handleResult(args []string) {
	fs := flag.NewFlagSet("result", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	pairing := fs.String("pairing", "", "Pairing id")
	result := fs.String("result", "", "Result code (1-0, 0-1, 1/2-1/2, 1F-0F, 0F-1F, 0F-0F)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	res, ok := tourney.ParseResult(*result)
	if !ok || res == tourney.ResultNone {
		log.Fatalf("Unknown result code %q", *result)
	}

	t := loadTournament(*file)
	if err := tourney.RecordResult(t, *pairing, res); err != nil {
		log.Fatalf("Error recording result: %v", err)
	}
	saveTournament(*file, t)
}

func handleFinish(args []string) {
	fs := flag.NewFlagSet("finish", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	t := loadTournament(*file)
	if err := tourney.CompleteRound(t); err != nil {
		log.Fatalf("Error completing round: %v", err)
	}
	saveTournament(*file, t)
	fmt.Printf("Round %v complete\n", len(t.Rounds))
}

func handleStandings(args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	t := loadTournament(*file)
	out, err := tourney.BuildStandingsOutput(t)
	if err != nil {
		log.Fatalf("Error computing standings: %v", err)
	}
	fmt.Print(out)
}

func handleUndo(args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament snapshot file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	t := loadTournament(*file)
	if err := tourney.DeleteLastRound(t); err != nil {
		log.Fatalf("Error deleting round: %v", err)
	}
	saveTournament(*file, t)
	fmt.Printf("Deleted round %v; points and ratings restored\n",
		len(t.Rounds)+1)
}

func loadTournament(path string) *tourney.Tournament {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Unable to read %v: %v", path, err)
	}
	t, err := tourney.Decode(data)
	if err != nil {
		log.Fatalf("Unable to parse %v: %v", path, err)
	}
	return t
}

func saveTournament(path string, t *tourney.Tournament) {
	data, err := t.Encode()
	if err != nil {
		log.Fatalf("Unable to serialize tournament: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Unable to write %v: %v", path, err)
	}
}
