package inventory

import (
	"sort"
	"time"

	"github.com/NIRESH7/garments-backend/internal/models"
)

type MonthlyBucket struct {
	Month               string  `json:"month"` // YYYY-MM
	OpeningBalanceRolls int     `json:"opening_balance_rolls"`
	OpeningBalance      float64 `json:"opening_balance"`
	InwardRolls         int     `json:"inward_rolls"`
	InwardWeight        float64 `json:"inward_weight"`
	OutwardRolls        int     `json:"outward_rolls"`
	OutwardWeight       float64 `json:"outward_weight"`
	ClosingBalanceRolls int     `json:"closing_balance_rolls"`
	ClosingBalance      float64 `json:"closing_balance"`
}

type stockEvent struct {
	inward bool
	date   time.Time
	rolls  int
	weight float64
}

// MonthlySummary merges every inward and outward event into one time-ordered
// stream and folds it into consecutive month buckets from the earliest event
// through now, most recent month first. Empty months are kept: later opening
// balances depend on the unbroken chain.
//
// The start/end window filters the returned buckets only, after the full
// history is folded. Filtering before the fold would corrupt opening balances.
func MonthlySummary(inwards []models.InwardReceipt, outwards []models.OutwardDispatch, startDate, endDate *time.Time, now time.Time) []MonthlyBucket {
	events := make([]stockEvent, 0, len(inwards)+len(outwards))
	for i := range inwards {
		rolls := 0
		weight := 0.0
		for _, e := range inwards[i].DiaEntries {
			rolls += e.RecRoll
			weight += e.RecWt
		}
		events = append(events, stockEvent{inward: true, date: inwards[i].InwardDate, rolls: rolls, weight: weight})
	}
	for i := range outwards {
		events = append(events, stockEvent{
			inward: false,
			date:   outwards[i].DateTime,
			rolls:  outwards[i].DeliveredRolls(),
			weight: outwards[i].DeliveredWeight(),
		})
	}
	if len(events) == 0 {
		return []MonthlyBucket{}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].date.Before(events[j].date) })

	byMonth := make(map[string][]stockEvent)
	for _, ev := range events {
		key := monthKey(ev.date)
		byMonth[key] = append(byMonth[key], ev)
	}

	var runningRolls int
	var runningWeight float64
	buckets := make([]MonthlyBucket, 0)

	first := events[0].date.UTC()
	cursor := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := now.UTC()
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cursor.After(end) {
		key := cursor.Format("2006-01")
		bucket := MonthlyBucket{
			Month:               key,
			OpeningBalanceRolls: runningRolls,
			OpeningBalance:      runningWeight,
		}
		for _, ev := range byMonth[key] {
			if ev.inward {
				bucket.InwardRolls += ev.rolls
				bucket.InwardWeight += ev.weight
				runningRolls += ev.rolls
				runningWeight += ev.weight
			} else {
				bucket.OutwardRolls += ev.rolls
				bucket.OutwardWeight += ev.weight
				runningRolls -= ev.rolls
				runningWeight -= ev.weight
			}
		}
		bucket.ClosingBalanceRolls = runningRolls
		bucket.ClosingBalance = runningWeight
		buckets = append(buckets, bucket)

		cursor = cursor.AddDate(0, 1, 0)
	}

	// Most recent month first.
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}

	if startDate == nil && endDate == nil {
		return buckets
	}

	filtered := make([]MonthlyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		monthStart, _ := time.Parse("2006-01", bucket.Month)
		if startDate != nil && monthStart.Before(*startDate) {
			continue
		}
		if endDate != nil && monthStart.After(*endDate) {
			continue
		}
		filtered = append(filtered, bucket)
	}
	return filtered
}

func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
