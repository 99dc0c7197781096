// Package series partitions index samples into chronological year and
// year-month groups.
package series

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoindex/internal/model"
)

// Group is the chronologically ordered subset of samples sharing a key.
type Group struct {
	Key     string              `json:"key" yaml:"key"`
	Year    int                 `json:"year" yaml:"year"`
	Month   int                 `json:"month,omitempty" yaml:"month,omitempty"` // 0 for year groups
	Samples []model.IndexSample `json:"samples" yaml:"samples"`
}

// Grouped is a grouped series ordered by key.
type Grouped []Group

// SortChronological returns a copy of samples sorted oldest first.
// Ties keep their input order.
func SortChronological(samples []model.IndexSample) []model.IndexSample {
	out := make([]model.IndexSample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AcquiredAt.Before(out[j].AcquiredAt)
	})
	return out
}

// SortNewestFirst returns a copy of samples sorted newest first.
// Ties keep their input order.
func SortNewestFirst(samples []model.IndexSample) []model.IndexSample {
	out := make([]model.IndexSample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AcquiredAt.After(out[j].AcquiredAt)
	})
	return out
}

// YearKey formats a year grouping key.
func YearKey(year int) string {
	return strconv.Itoa(year)
}

// YearMonthKey formats a year-month grouping key, e.g. "2021-03".
func YearMonthKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// GroupByYear buckets samples by the calendar year of their acquisition time.
// The year is read in the timestamp's own location; no conversion is applied.
func GroupByYear(samples []model.IndexSample) Grouped {
	return group(samples, func(s model.IndexSample) (string, int, int) {
		y := s.AcquiredAt.Year()
		return YearKey(y), y, 0
	})
}

// GroupByYearMonth buckets samples by calendar year and month.
func GroupByYearMonth(samples []model.IndexSample) Grouped {
	return group(samples, func(s model.IndexSample) (string, int, int) {
		y, m := s.AcquiredAt.Year(), int(s.AcquiredAt.Month())
		return YearMonthKey(y, m), y, m
	})
}

func group(samples []model.IndexSample, keyFn func(model.IndexSample) (string, int, int)) Grouped {
	sorted := SortChronological(samples)
	out := Grouped{}
	idx := make(map[string]int)
	for _, s := range sorted {
		key, year, month := keyFn(s)
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, Group{Key: key, Year: year, Month: month})
		}
		out[i].Samples = append(out[i].Samples, s)
	}
	// Mixed offsets can put a later calendar key before an earlier one.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// Lookup returns the group with the given key.
func (g Grouped) Lookup(key string) (Group, bool) {
	for _, grp := range g {
		if grp.Key == key {
			return grp, true
		}
	}
	return Group{}, false
}

// Keys returns the group keys in order.
func (g Grouped) Keys() []string {
	keys := make([]string, len(g))
	for i, grp := range g {
		keys[i] = grp.Key
	}
	return keys
}

// Years returns the distinct years present, ascending.
func (g Grouped) Years() []int {
	var years []int
	for _, grp := range g {
		if len(years) == 0 || years[len(years)-1] != grp.Year {
			years = append(years, grp.Year)
		}
	}
	return years
}

// Flatten concatenates the groups' samples in key order.
func (g Grouped) Flatten() []model.IndexSample {
	var out []model.IndexSample
	for _, grp := range g {
		out = append(out, grp.Samples...)
	}
	return out
}

// YearGroup returns the year group for year. It is the validated handle the
// bar chart needs for its active year.
func (g Grouped) YearGroup(year int) (Group, error) {
	grp, ok := g.Lookup(YearKey(year))
	if !ok || grp.Month != 0 {
		return Group{}, eris.Errorf("series: no samples for year %d", year)
	}
	return grp, nil
}

// MeanOfMeans averages the Mean of each sample. It returns 0 for no samples.
func MeanOfMeans(samples []model.IndexSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.Mean
	}
	return sum / float64(len(samples))
}

// Within returns the samples acquired in the years*365 days up to now, in
// input order. years <= 0 keeps everything.
func Within(samples []model.IndexSample, now time.Time, years int) []model.IndexSample {
	if years <= 0 {
		out := make([]model.IndexSample, len(samples))
		copy(out, samples)
		return out
	}
	cutoff := now.AddDate(0, 0, -365*years)
	var out []model.IndexSample
	for _, s := range samples {
		if !s.AcquiredAt.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}
