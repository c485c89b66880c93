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
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"inbox-lab/domain/event"
)

// Read-only view over the event log, for debugging a live daemon.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Default scans the primary records, skipping the org:/typ: index keys
	prefix := flag.String("prefix", "evt:", "Prefix to scan")
	org := flag.String("org", "", "Restrict to one organization")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	events, err := scan(db, *prefix, *org)
	if err != nil {
		log.Fatal(err)
	}

	header := fmt.Sprintf(" %d events (prefix %q) ", len(events), *prefix)
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Aggregate", "Type", "Version", "Organization", "At", "Payload"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := lo.Map(events, func(evt event.StoredEvent, _ int) []string {
		return []string{
			evt.AggregateID,
			evt.EventType,
			fmt.Sprintf("%d", evt.Version),
			evt.OrganizationID,
			evt.CreatedAt.Format("15:04:05"),
			truncate(string(evt.EventData), 60),
		}
	})
	table.AppendBulk(rows)
	table.Render()

	printCounts(events)
}

func scan(db *badger.DB, prefix, org string) ([]event.StoredEvent, error) {
	var events []event.StoredEvent
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var evt event.StoredEvent
				if err := json.Unmarshal(v, &evt); err != nil {
					// Index keys hold raw pointers, not records
					return nil
				}
				if org != "" && evt.OrganizationID != org {
					return nil
				}
				events = append(events, evt)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return events, err
}

func printCounts(events []event.StoredEvent) {
	byType := lo.CountValuesBy(events, func(evt event.StoredEvent) string {
		return evt.EventType
	})
	for eventType, count := range byType {
		fmt.Printf("%s: %d\n", eventType, count)
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)
	return badger.Open(opts)
}
