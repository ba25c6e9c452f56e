package logs

import (
	"sort"
	"strconv"
	"time"
)

// MonthlySummary es el resumen "este mes". Nil = sin datos.
// Es derivado: se recalcula desde los logs, nunca se edita.
type MonthlySummary struct {
	LatestWeightLog        *WeightLog        `json:"latest_weight_log"`
	LatestBodyConditionLog *BodyConditionLog `json:"latest_body_condition_log"`
}

// SummarizeThisMonth usa la fecha actual, evaluada en cada llamada.
func SummarizeThisMonth(bodyConditionLogs []BodyConditionLog, weightLogs []WeightLog) MonthlySummary {
	return SummarizeMonth(time.Now(), bodyConditionLogs, weightLogs)
}

// SummarizeMonth toma, para cada secuencia, el log más reciente del mes/año de now.
func SummarizeMonth(now time.Time, bodyConditionLogs []BodyConditionLog, weightLogs []WeightLog) MonthlySummary {
	var out MonthlySummary
	if l, ok := LatestInMonth(now, weightLogs); ok {
		out.LatestWeightLog = &l
	}
	if l, ok := LatestInMonth(now, bodyConditionLogs); ok {
		out.LatestBodyConditionLog = &l
	}
	return out
}

type datedEntry[T Dated] struct {
	at  time.Time
	log T
}

// LatestInMonth filtra al mes calendario de now, ordena por fecha desc (estable) y toma el primero.
// Con fechas empatadas gana el que aparece antes en la secuencia de origen.
func LatestInMonth[T Dated](now time.Time, in []T) (T, bool) {
	var zero T

	filtered := make([]datedEntry[T], 0, len(in))
	for _, l := range in {
		at, ok := l.LogDate().Time(now.Location())
		if !ok {
			continue
		}
		if !sameMonth(at, now) {
			continue
		}
		filtered = append(filtered, datedEntry[T]{at: at, log: l})
	}
	if len(filtered) == 0 {
		return zero, false
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].at.After(filtered[j].at)
	})
	return filtered[0].log, true
}

// Latest devuelve el log con fecha más reciente sin filtrar por mes.
func Latest[T Dated](loc *time.Location, in []T) (T, time.Time, bool) {
	var (
		best   T
		bestAt time.Time
		has    bool
	)
	for _, l := range in {
		at, ok := l.LogDate().Time(loc)
		if !ok {
			continue
		}
		if !has || at.After(bestAt) {
			best, bestAt, has = l, at, true
		}
	}
	return best, bestAt, has
}

const noData = "No data"

// WeightText / BodyConditionText: líneas del bloque "This Month's Summary".
func (s MonthlySummary) WeightText() string {
	if s.LatestWeightLog == nil {
		return "Latest Weight: " + noData
	}
	return "Latest Weight: " + strconv.FormatFloat(s.LatestWeightLog.Weight, 'f', -1, 64) + " kg"
}

func (s MonthlySummary) BodyConditionText() string {
	if s.LatestBodyConditionLog == nil || s.LatestBodyConditionLog.BodyCondition == "" {
		return "Body Condition: " + noData
	}
	return "Body Condition: " + s.LatestBodyConditionLog.BodyCondition
}
