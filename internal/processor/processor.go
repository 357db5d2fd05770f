// Package processor runs a search task and fingerprints the result for the transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
	"github.com/docker/distribution/uuid"
	"github.com/rs/zerolog"
)

type Processor struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) Processor {
	return Processor{log: log}
}

// ProcessTask never fails: a cancelled context gives an empty result with the hash of no lines
func (p Processor) ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Lines:  []string{},
	}
	if result.TaskID == "" {
		result.TaskID = uuid.Generate().String()
	}

	if ctx.Err() == nil {
		mode := model.ModeFor(task.Strict)
		lines := matcher.Search(task.Text(), task.Query, mode)

		// пока искали, запрос могли отменить - тогда отдаем пустой результат
		if ctx.Err() == nil {
			result.Lines = lines
		}

		p.log.Debug().
			Str("tid", result.TaskID).
			Stringer("mode", mode).
			Int("matches", len(result.Lines)).
			Msg("task processed")
	}

	result.HashSumm = Hash(result.Lines)

	return &result
}

// Hash - xxhash64 over lines, each terminated by '\n' so that ["ab"] and ["a","b"] differ
func Hash(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
