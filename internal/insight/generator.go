package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"rima-workspace/internal/model"
	"rima-workspace/pkg/log"
)

const cacheSize = 128

// Generator produces the insight list for an aggregate snapshot. The
// evaluation itself is a deterministic rule cascade; the Delayer only
// adds the simulated latency in front of it.
type Generator interface {
	Generate(ctx context.Context, snap Snapshot) ([]model.Insight, error)
}

type implGenerator struct {
	l       log.Logger
	delayer Delayer
	cache   *lru.Cache[string, []model.Insight]
}

func New(l log.Logger, delayer Delayer) Generator {
	cache, _ := lru.New[string, []model.Insight](cacheSize)
	return &implGenerator{
		l:       l,
		delayer: delayer,
		cache:   cache,
	}
}

func (g *implGenerator) Generate(ctx context.Context, snap Snapshot) ([]model.Insight, error) {
	if err := g.delayer.Delay(ctx); err != nil {
		g.l.Warnf(ctx, "insight.Generate.Delay: %v", err)
		return nil, err
	}

	key, ok := snapshotKey(snap)
	if ok {
		if cached, hit := g.cache.Get(key); hit {
			return cloneInsights(cached), nil
		}
	}

	insights := evaluate(snap)

	if ok {
		g.cache.Add(key, cloneInsights(insights))
	}

	return insights, nil
}

// snapshotKey hashes the snapshot content so identical aggregate
// states share one cache slot. Marshalling failures just disable
// caching for that call.
func snapshotKey(snap Snapshot) (string, bool) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), true
}

func cloneInsights(in []model.Insight) []model.Insight {
	if in == nil {
		return nil
	}
	out := make([]model.Insight, len(in))
	copy(out, in)
	return out
}
