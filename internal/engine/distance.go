package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"bc-mercantile/internal/bitjita"
	"bc-mercantile/internal/logger"
)

// distanceScale converts raw coordinate units to travel distance units.
const distanceScale = 3

// ClaimFetcher fetches a claim record by entity id.
type ClaimFetcher interface {
	Claim(ctx context.Context, claimID string) (*bitjita.Claim, error)
}

// DistanceResolver computes and caches the travel distance from the home
// claim to every counterparty claim seen in matched trades. Each distinct
// claim id is fetched once; claims whose fetch fails stay absent from the
// cache and their trades are dropped downstream.
type DistanceResolver struct {
	client   ClaimFetcher
	homeX    float64
	homeZ    float64
	cooldown time.Duration
	sleep    func(time.Duration)
	dists    map[string]float64
}

// NewDistanceResolver creates a resolver anchored at the home claim's
// coordinates. cooldown is the pause applied after a failed fetch.
func NewDistanceResolver(client ClaimFetcher, home *bitjita.Claim, cooldown time.Duration) *DistanceResolver {
	return &DistanceResolver{
		client:   client,
		homeX:    home.LocationX,
		homeZ:    home.LocationZ,
		cooldown: cooldown,
		sleep:    time.Sleep,
		dists:    make(map[string]float64),
	}
}

// Resolve populates the distance cache for every distinct counterparty
// claim appearing in matches. Sequential; the client's own throttle paces
// the fetches.
func (r *DistanceResolver) Resolve(ctx context.Context, homeClaimID string, matches []TradeMatch) {
	var ids []string
	seen := make(map[string]bool)
	for _, m := range matches {
		id := m.CounterpartyID(homeClaimID)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	logger.Info("Distance", fmt.Sprintf("%d identified profitable trade partners.", len(ids)))

	for i, id := range ids {
		if i%10 == 0 {
			logger.Info("Distance", fmt.Sprintf("%.2f %% Complete: %d/%d Claims", 100*float64(i)/float64(len(ids)), i, len(ids)))
		}
		claim, err := r.client.Claim(ctx, id)
		if err != nil {
			logger.Error("Distance", fmt.Sprintf("Unable to complete query for claim id %s, pausing queries: %v", id, err))
			r.sleep(r.cooldown)
			logger.Info("Distance", "Continuing, skipping failed query.")
			continue
		}
		r.dists[id] = Distance(r.homeX, r.homeZ, claim.LocationX, claim.LocationZ)
	}
}

// Lookup returns the cached distance to a claim. ok is false when the
// claim's fetch failed and the distance is unknown.
func (r *DistanceResolver) Lookup(claimID string) (dist float64, ok bool) {
	dist, ok = r.dists[claimID]
	return dist, ok
}

// Distance is the scaled planar distance between two points, rounded to
// two decimal places.
func Distance(x0, z0, x1, z1 float64) float64 {
	return round2(math.Hypot(x0-x1, z0-z1) / distanceScale)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
