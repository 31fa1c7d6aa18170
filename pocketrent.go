// Package pocketrent answers natural-language questions about UK regional
// rent prices.
//
// Usage:
//
//	db := dataset.LoadFile("rent_data.csv") // degrades to fallback on failure
//	bot := pocketrent.New(db)
//	reply := bot.ProcessQuery("Cheapest 2-bed in North West")
//
// The pipeline is parse → resolve → format: free text becomes a structured
// intent, the intent runs read-only against the in-memory dataset, and the
// result renders as a markdown reply. ProcessQuery is a total function from
// string to string — every failure mode comes back as a formatted message.
//
// The dataset is immutable after load, so one Bot can serve concurrent
// queries without locking.
package pocketrent

import (
	"strings"

	"github.com/pocketrent-org/pocketrent/dataset"
	"github.com/pocketrent-org/pocketrent/format"
	"github.com/pocketrent-org/pocketrent/query"
	"github.com/pocketrent-org/pocketrent/resolver"
)

// emptyPrompt is returned for empty or whitespace-only input, without
// invoking the parser.
const emptyPrompt = "Please enter a question about UK rent prices."

// Bot wires the parser and resolver around one loaded dataset.
type Bot struct {
	db       *dataset.Dataset
	parser   *query.Parser
	resolver *resolver.Resolver
}

// New builds a Bot over the given dataset. The dataset is a constructed,
// explicitly passed dependency; tests supply fixtures via dataset.New.
func New(db *dataset.Dataset) *Bot {
	return &Bot{
		db:       db,
		parser:   query.New(db),
		resolver: resolver.New(db),
	}
}

// ProcessQuery answers one free-text question with a markdown reply.
func (b *Bot) ProcessQuery(input string) string {
	if strings.TrimSpace(input) == "" {
		return emptyPrompt
	}
	intent := b.parser.Parse(input)
	return format.Render(b.resolver.Resolve(intent))
}

// Dataset exposes the loaded corpus for hosts that surface its metadata
// (period label, coverage count).
func (b *Bot) Dataset() *dataset.Dataset {
	return b.db
}
