package memory

import (
	"time"

	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/ports/store"
)

// SeedDemo carga tres mascotas con logs alrededor de now (modo dev).
func (s *Store) SeedDemo(now time.Time) error {
	day := func(monthsAgo, d int) string {
		return time.Date(now.Year(), now.Month()-time.Month(monthsAgo), d, 10, 0, 0, 0, now.Location()).Format(time.RFC3339)
	}

	demoPets := []map[string]any{
		{"id": "1", "name": "Milo", "species": pets.SpeciesDog, "age": 4},
		{"id": "2", "name": "Luna", "species": pets.SpeciesCat, "age": 2},
		{"id": "3", "name": "Coco", "species": pets.SpeciesDog, "age": 11},
	}
	for _, p := range demoPets {
		if _, err := s.Insert(store.CollectionPets, p); err != nil {
			return err
		}
	}

	weights := []map[string]any{
		{"pet_id": "1", "date": day(2, 5), "weight": 18.2},
		{"pet_id": "1", "date": day(1, 5), "weight": 18.6},
		{"pet_id": "1", "date": day(0, 1), "weight": 18.9},
		{"pet_id": "1", "date": day(0, 2), "weight": 19.1},
		{"pet_id": "2", "date": day(1, 12), "weight": 4.1},
	}
	conditions := []map[string]any{
		{"pet_id": "1", "date": day(1, 5), "body_condition": "ideal"},
		{"pet_id": "1", "date": day(0, 2), "body_condition": "slightly heavy"},
		{"pet_id": "2", "date": day(0, 1), "body_condition": "thin"},
	}
	visits := []map[string]any{
		{"pet_id": "1", "date": day(2, 20), "notes": "Annual vaccines, all good."},
		{"pet_id": "3", "date": day(4, 8), "notes": "Dental cleaning."},
	}

	batches := []struct {
		collection string
		rows       []map[string]any
	}{
		{store.CollectionWeightLogs, weights},
		{store.CollectionBodyConditionLogs, conditions},
		{store.CollectionVetVisitLogs, visits},
	}
	for _, b := range batches {
		for _, r := range b.rows {
			if _, err := s.Insert(b.collection, r); err != nil {
				return err
			}
		}
	}
	return nil
}
