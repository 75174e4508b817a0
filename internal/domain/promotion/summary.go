package promotion

import (
	"math"
	"time"

	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/domain/aggregate"
)

const (
	// DefaultExpiringWindowDays bounds the "expiring soon" count.
	DefaultExpiringWindowDays = 7
	// DefaultRankingLimit is the size of the usage ranking.
	DefaultRankingLimit = 5
)

// DaysLeft returns the whole days until the end date, rounded up.
// ok is false when the end date does not parse.
func (p Promotion) DaysLeft(now time.Time) (days int, ok bool) {
	end, err := time.Parse(domain.DateLayout, p.endDate)
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(end.Sub(now).Hours() / 24)), true
}

// ExpiresWithin reports whether p is active and ends in (0, window] days.
func (p Promotion) ExpiresWithin(now time.Time, window int) bool {
	if !p.isActive {
		return false
	}
	days, ok := p.DaysLeft(now)
	return ok && days > 0 && days <= window
}

// UsagePercent returns usage count over limit, as a percentage.
func (p Promotion) UsagePercent() float64 {
	return aggregate.Percent(float64(p.usageCount), float64(p.usageLimit))
}

// TypeShare is the count and percentage of coupons of one type.
type TypeShare struct {
	Count   int
	Percent float64
}

// Summary holds coupon metrics.
type Summary struct {
	Total        int
	Active       int
	TotalUsage   int
	UsageRate    float64
	ExpiringSoon int
	ByType       map[Type]TypeShare
	Ranking      []Promotion
}

// Options tune the relative metrics.
type Options struct {
	Now                time.Time
	ExpiringWindowDays int
	RankingLimit       int
}

func (o Options) withDefaults() Options {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.ExpiringWindowDays <= 0 {
		o.ExpiringWindowDays = DefaultExpiringWindowDays
	}
	if o.RankingLimit <= 0 {
		o.RankingLimit = DefaultRankingLimit
	}
	return o
}

// Summarize computes coupon metrics over the whole collection.
func Summarize(items []Promotion, opts Options) Summary {
	opts = opts.withDefaults()
	usage := aggregate.Sum(items, func(p Promotion) float64 { return float64(p.usageCount) })
	limit := aggregate.Sum(items, func(p Promotion) float64 { return float64(p.usageLimit) })

	byType := make(map[Type]TypeShare, len(Types))
	for _, t := range Types {
		n := aggregate.Count(items, func(p Promotion) bool { return p.kind == t })
		byType[t] = TypeShare{
			Count:   n,
			Percent: aggregate.Round(aggregate.Percent(float64(n), float64(len(items))), 2),
		}
	}

	return Summary{
		Total:      len(items),
		Active:     aggregate.Count(items, Promotion.IsActive),
		TotalUsage: int(usage),
		UsageRate:  aggregate.Round(aggregate.Percent(usage, limit), 2),
		ExpiringSoon: aggregate.Count(items, func(p Promotion) bool {
			return p.ExpiresWithin(opts.Now, opts.ExpiringWindowDays)
		}),
		ByType:  byType,
		Ranking: Rank(items, opts.RankingLimit),
	}
}

// Rank returns the top limit coupons by usage count, ties in store order.
func Rank(items []Promotion, limit int) []Promotion {
	return aggregate.Rank(items, func(p Promotion) float64 { return float64(p.usageCount) }, limit)
}
