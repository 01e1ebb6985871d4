// Package feeds reads raw picks from the upstream feed collaborators. Sources
// are independent; the gatherer proceeds with whatever sources returned and
// reports the ones that failed.
package feeds

import (
	"context"
	"fmt"

	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// GatherResult is the combined fetch across all configured sources
type GatherResult struct {
	Picks         []models.RawPick
	FailedSources []string
	Errors        map[string]error
}

// AllFailed reports total upstream failure, which callers must surface as an
// explicit "no data available" signal rather than an empty success.
func (r GatherResult) AllFailed(total int) bool {
	return total > 0 && len(r.FailedSources) == total
}

// Gather fetches every source, tolerating per-source failure. Order of picks
// follows the source order, so the combined batch is deterministic for a
// fixed source configuration.
func Gather(ctx context.Context, sources []contracts.FeedSource) GatherResult {
	result := GatherResult{
		Picks:  []models.RawPick{},
		Errors: map[string]error{},
	}

	for _, source := range sources {
		picks, err := source.Fetch(ctx)
		if err != nil {
			fmt.Printf("feed source %s failed: %v\n", source.Name(), err)
			result.FailedSources = append(result.FailedSources, source.Name())
			result.Errors[source.Name()] = err
			continue
		}

		// Stamp the source identifier; feeds do not always set it themselves
		for i := range picks {
			if picks[i].Source == "" {
				picks[i].Source = source.Name()
			}
		}
		result.Picks = append(result.Picks, picks...)
	}

	return result
}
