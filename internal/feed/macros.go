package feed

import (
	"sort"

	"github.com/claude/healthsync/internal/models"
)

// DailyMacros is the summed protein/carbs/fat for one day's kept food
// record. Derived on every read, never persisted.
type DailyMacros struct {
	Day     string  `json:"day"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MealPortion is one meal slot's contribution to the by-meal-per-day
// breakdown chart.
type MealPortion struct {
	Day     string  `json:"day"`
	Meal    string  `json:"meal"`
	Grams   float64 `json:"grams"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// DailyMacroTotals sums each day's meal nutrients, one total per day with
// food data, sorted by day. Missing nutrients count as zero; records
// whose meal data fails to parse are skipped without aborting other days.
func DailyMacroTotals(foods []models.FoodRow) []DailyMacros {
	kept := dedupeByDay(foods)

	totals := make([]DailyMacros, 0, len(kept))
	for _, f := range kept {
		set, err := models.ParseMealSet(f.Meals)
		if err != nil {
			continue
		}
		day := dayOfRecord(f.Date)
		t := DailyMacros{Day: day}
		for _, n := range set {
			t.Protein += n.Protein
			t.Carbs += n.Carbs
			t.Fat += n.Fat
		}
		totals = append(totals, t)
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].Day < totals[j].Day })
	return totals
}

// MealBreakdown emits one row per meal slot of each day's kept food
// record, for the grams-by-meal chart. It applies the same per-day
// deduplication as DailyMacroTotals: a resubmission for a day replaces
// that day in every food view.
func MealBreakdown(foods []models.FoodRow) []MealPortion {
	kept := dedupeByDay(foods)

	var portions []MealPortion
	for _, f := range kept {
		set, err := models.ParseMealSet(f.Meals)
		if err != nil {
			continue
		}
		day := dayOfRecord(f.Date)

		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			n := set[name]
			portions = append(portions, MealPortion{
				Day:     day,
				Meal:    name,
				Grams:   n.Protein + n.Carbs + n.Fat,
				Protein: n.Protein,
				Carbs:   n.Carbs,
				Fat:     n.Fat,
			})
		}
	}

	sort.SliceStable(portions, func(i, j int) bool { return portions[i].Day < portions[j].Day })
	return portions
}

// dedupeByDay keeps only the most-recently-dated food record per calendar
// day, so multiple same-day submissions are never double-counted. Ties on
// timestamp keep the later submission.
func dedupeByDay(foods []models.FoodRow) []models.FoodRow {
	type dated struct {
		row models.FoodRow
		idx int
	}
	byDay := map[string]dated{}

	for i, f := range foods {
		ts, err := models.ParseRecordTime(f.Date)
		if err != nil {
			continue
		}
		day := models.DayOf(ts)
		cur, ok := byDay[day]
		if !ok {
			byDay[day] = dated{row: f, idx: i}
			continue
		}
		curTS, _ := models.ParseRecordTime(cur.row.Date)
		if ts.After(curTS) || (ts.Equal(curTS) && i > cur.idx) {
			byDay[day] = dated{row: f, idx: i}
		}
	}

	kept := make([]models.FoodRow, 0, len(byDay))
	for _, d := range byDay {
		kept = append(kept, d.row)
	}
	sort.Slice(kept, func(i, j int) bool { return dayOfRecord(kept[i].Date) < dayOfRecord(kept[j].Date) })
	return kept
}

func dayOfRecord(date string) string {
	ts, err := models.ParseRecordTime(date)
	if err != nil {
		return date
	}
	return models.DayOf(ts)
}
