package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"notify-lab/repositories"
)

func main() {
	dbPath := flag.String("db", "/tmp/notify-lab/badger", "Path to badger DB")
	prefix := flag.String("prefix", "verdict:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Status", "Timestamp", "Post ID", "Channel", "Reason", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var records []repositories.VerdictRecord
	var keys []string

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			err := item.Value(func(v []byte) error {
				var record repositories.VerdictRecord
				if err := json.Unmarshal(v, &record); err != nil {
					// Log the bad record and keep scanning instead of stopping the script
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				records = append(records, record)
				keys = append(keys, string(item.Key()))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	rows := lo.Map(records, func(record repositories.VerdictRecord, i int) []string {
		// Only the first 8 characters of the post ID, for readability
		displayID := record.PostID.String()
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}

		detail := record.Title
		if record.Body != "" {
			detail = record.Title + " / " + record.Body
		}

		return []string{
			keys[i],
			colorizeStatus(string(record.Status)),
			record.At.Format("15:04:05"),
			displayID,
			record.ChannelID,
			string(record.Reason),
			detail,
		}
	})
	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
}

func colorizeStatus(status string) string {
	switch strings.ToLower(status) {
	case "sent":
		return color.Green.Render(status)
	case "not_sent":
		return color.Yellow.Render(status)
	case "error":
		return color.Red.Render(status)
	default:
		return status
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(opts)
}
