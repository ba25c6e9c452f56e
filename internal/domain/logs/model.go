package logs

import (
	"time"

	"pet-health-log/internal/ports/store"
)

// Date se guarda tal como viene del store.
// Se parsea recién al filtrar/ordenar; una fecha inválida o vacía nunca rompe la comparación.
type Date string

// Time devuelve la fecha en loc. ok=false si no se puede parsear.
func (d Date) Time(loc *time.Location) (time.Time, bool) {
	return ParseDate(string(d), loc)
}

// WeightLog es un registro de peso (kg).
type WeightLog struct {
	ID     store.ID `json:"id"`
	PetID  store.ID `json:"pet_id"`
	Date   Date     `json:"date"`
	Weight float64  `json:"weight"`
}

// BodyConditionLog registra la condición corporal (etiqueta categórica).
type BodyConditionLog struct {
	ID            store.ID `json:"id"`
	PetID         store.ID `json:"pet_id"`
	Date          Date     `json:"date"`
	BodyCondition string   `json:"body_condition"`
}

// VetVisitLog es una visita al veterinario con notas libres.
type VetVisitLog struct {
	ID    store.ID `json:"id"`
	PetID store.ID `json:"pet_id"`
	Date  Date     `json:"date"`
	Notes string   `json:"notes"`
}

func (l WeightLog) LogDate() Date        { return l.Date }
func (l BodyConditionLog) LogDate() Date { return l.Date }
func (l VetVisitLog) LogDate() Date      { return l.Date }

// Dated lo implementan los tres tipos de log.
type Dated interface {
	WeightLog | BodyConditionLog | VetVisitLog
	LogDate() Date
}

func (l WeightLog) LogPetID() store.ID        { return l.PetID }
func (l BodyConditionLog) LogPetID() store.ID { return l.PetID }
func (l VetVisitLog) LogPetID() store.ID      { return l.PetID }
