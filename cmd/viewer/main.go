package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"notify-lab/internal"
	"notify-lab/repositories"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the daemon) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Start Debug Server Only
	// We provide an empty stats provider since the orchestrator isn't running here
	emptyStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.DebugPort)

	internal.StartDebugServer(db, config.DebugPort, "/inspect", VerdictMapper, emptyStats)
	select {}
}

// VerdictMapper is duplicated from the daemon to keep the viewer independent.
func VerdictMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	var record repositories.VerdictRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return row
	}

	row.Status = string(record.Status)
	row.Reason = string(record.Reason)
	row.Timestamp = record.At.Format("15:04:05")
	row.Channel = record.ChannelID
	row.Detail = record.Title
	if record.Body != "" {
		row.Detail = record.Title + " / " + record.Body
	}
	return row
}
