package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pocketrent-org/pocketrent"
	"github.com/pocketrent-org/pocketrent/config"
	"github.com/pocketrent-org/pocketrent/dataset"
	"github.com/pocketrent-org/pocketrent/server"
)

// ============================================================================
// POCKETRENT CLI — UK rent prices in plain English
// ============================================================================

const version = "1.0.0"

func main() {
	cfg := config.Load()

	filePath := flag.String("file", cfg.DataPath, "Path to the ONS rent data CSV")
	queryStr := flag.String("query", "", "Answer one question and exit")
	serve := flag.Bool("serve", false, "Serve the chat API over HTTP")
	addr := flag.String("addr", cfg.Addr, "Listen address for --serve")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `PocketRent — your pocket guide to UK rent prices

Usage:
  pocketrent --query "Cheapest 2-bed in North West"
  pocketrent --serve --addr :8080
  pocketrent                      (interactive chat)

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  POCKETRENT_DATA   Rent data CSV path (default ./data/rent_data.csv)
  POCKETRENT_ADDR   Listen address for --serve (default :8080)

A missing or unreadable data file is not fatal: the bot starts with a
fallback national-average record and answers "not found" for area queries.
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("pocketrent %s\n", version)
		os.Exit(0)
	}

	bot := pocketrent.New(dataset.LoadFile(*filePath))

	switch {
	case *queryStr != "":
		fmt.Println(bot.ProcessQuery(*queryStr))
	case *serve:
		if err := server.New(bot).Run(*addr); err != nil {
			fatalf("Server failed: %v", err)
		}
	default:
		runChat(bot)
	}
}

// runChat is the terminal chat loop. Type a question per line; "exit" or
// "quit" ends the session.
func runChat(bot *pocketrent.Bot) {
	db := bot.Dataset()
	fmt.Printf("🏠 PocketRent — UK rent prices in plain English (%s, %d areas)\n", db.Period, db.Len())
	fmt.Println(`Try "Compare Manchester vs Liverpool" or "help". Type "exit" to quit.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == "quit" {
			return
		}
		fmt.Println("\n" + bot.ProcessQuery(input))
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
