// Package search runs full-text queries over the message index built by the
// search sink. It decouples the raw agent input from the Bluge engine.
package search

import (
	"context"
	"strconv"
	"strings"

	"github.com/blugelabs/bluge"
)

const defaultLimit = 10

// Query represents the structured parameters for an inbox search.
type Query struct {
	RawInput       string // The original input from the agent
	Terms          string // The actual text to search in Bluge
	OrganizationID string // Tenant scope, mandatory for execution
	ConversationID string // Optional narrowing to one conversation
	Limit          int    // Pagination: number of results
}

// Hit is one matching message.
type Hit struct {
	EventID        string
	ConversationID string
	Content        string
	Score          float64
}

// Parse extracts command-line style arguments from a raw input string.
// Example: /find "invoice overdue" --org org-1 --conversation conv-12 --limit 5
func Parse(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "org":
				query.OrganizationID = val
			case "conversation":
				query.ConversationID = val
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a flag, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, strings.Trim(part, `"`))
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}

// Find executes the query against the index. Tenant isolation is enforced
// here: every search is filtered on organization_id.
func Find(ctx context.Context, reader *bluge.Reader, query *Query) ([]Hit, error) {
	match := bluge.NewMatchQuery(query.Terms).SetField("content")
	filtered := bluge.NewBooleanQuery().
		AddMust(match).
		AddMust(bluge.NewTermQuery(query.OrganizationID).SetField("organization_id"))
	if query.ConversationID != "" {
		filtered.AddMust(bluge.NewTermQuery(query.ConversationID).SetField("conversation_id"))
	}

	request := bluge.NewTopNSearch(query.Limit, filtered)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		hit := Hit{Score: next.Score}
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.EventID = string(value)
			case "conversation_id":
				hit.ConversationID = string(value)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
