package cache

import (
	"context"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

// StatsCache holds recently computed dashboard counts so the stats endpoint
// does not hit the count queries on every call.
type StatsCache interface {
	Get(ctx context.Context) (*model.Stats, bool, error)
	Set(ctx context.Context, stats *model.Stats) error
}
