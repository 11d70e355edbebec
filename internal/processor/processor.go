// Package processor runs a search request received by the transport layer and builds the result
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

// ProcessInput returns matches in order. A cancelled ctx yields an empty result.
func (p Processor) ProcessInput(ctx context.Context, req *model.SearchRequest) *model.SearchResult {
	result := model.SearchResult{
		Lines: getMatchingLines(ctx, req),
	}
	result.Count = len(result.Lines)

	// считаем общий хеш
	result.HashSumm = hasher(ctx, result.Lines)

	return &result
}

func getMatchingLines(ctx context.Context, req *model.SearchRequest) []string {
	result := []string{}
	for line := range matcher.Matches(req.Query, req.Contents, !req.CaseInsensitive) {
		select {
		case <-ctx.Done():
			return []string{}
		default:
			result = append(result, line)
		}
	}

	// проверяем контекст еще раз - совпадений могло не быть вовсе
	if ctx.Err() != nil {
		return []string{}
	}
	return result
}

// hasher separates lines with '\n' so that ["ab"] and ["a","b"] differ
func hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
