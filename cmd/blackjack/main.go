package main

import (
	"fmt"
	"log"
	"os"

	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/i18n"
	"blackjack/internal/player"
	"blackjack/internal/table"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	printer := i18n.Printer(i18n.ResolveTag(cfg.Language))
	opts := table.Options{
		Rules:      cfg.Rules(),
		MaxPlayers: cfg.MaxPlayers,
		Printer:    printer,
	}

	var repo *player.SQLiteRepository
	if cfg.LedgerEnabled {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		repo = player.NewRepository(db.DB)
		opts.Recorder = repo
	}

	session := table.NewSession(table.NewConsole(os.Stdin, os.Stdout), opts)
	settlement, err := session.Run()
	if err != nil {
		log.Fatalf("Round aborted: %v", err)
	}

	if repo == nil {
		return
	}

	fmt.Println(printer.Sprintf("ledger.header"))
	for _, pay := range settlement.Payouts {
		rec, err := repo.Get(pay.Name)
		if err != nil {
			log.Printf("Failed to load balance of %s: %v", pay.Name, err)
			continue
		}
		fmt.Println(printer.Sprintf("ledger.line", rec.Name, table.FormatAmount(rec.Balance), rec.Games))
	}
}
