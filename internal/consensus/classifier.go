package consensus

import "github.com/pickline/consensus/pkg/models"

// TierFor maps a distinct-capper count to a confidence tier. Total and pure:
// four or more cappers is a LOCK, exactly three is STRONG (the "fire pick"),
// exactly two is LEAN, anything less carries no tier.
func TierFor(capperCount int) models.Tier {
	switch {
	case capperCount >= 4:
		return models.TierLock
	case capperCount == 3:
		return models.TierStrong
	case capperCount == 2:
		return models.TierLean
	default:
		return models.TierNone
	}
}
