package query

import (
	"sort"
	"strings"

	"github.com/medebd/medicine-api/catalogparser/entities"
)

// BrandNameScore scores a brand name by its space-separated segment count so
// multi-word brand names rank above single-word ones. Consecutive spaces
// count as extra segments, matching the historical split-on-single-space
// behavior.
func BrandNameScore(name string) int {
	if name == "" {
		return 0
	}
	return len(strings.Split(name, " "))
}

// IndicationScore scores a generic by the number of indications it lists.
func IndicationScore(indication []string) int {
	return len(indication)
}

// RankMedicines returns a copy of meds ordered by descending brand name
// score. Ties break on ascending brand id so repeated queries return the
// same ordering.
func RankMedicines(meds []entities.Medicine) []entities.Medicine {
	ranked := make([]entities.Medicine, len(meds))
	copy(ranked, meds)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := BrandNameScore(ranked[i].BrandName), BrandNameScore(ranked[j].BrandName)
		if si != sj {
			return si > sj
		}
		return ranked[i].BrandID < ranked[j].BrandID
	})

	return ranked
}

// RankGenerics returns a copy of gens ordered by descending indication
// count, ties on ascending generic id.
func RankGenerics(gens []entities.Generic) []entities.Generic {
	ranked := make([]entities.Generic, len(gens))
	copy(ranked, gens)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := IndicationScore(ranked[i].Indication), IndicationScore(ranked[j].Indication)
		if si != sj {
			return si > sj
		}
		return ranked[i].GenericID < ranked[j].GenericID
	})

	return ranked
}
