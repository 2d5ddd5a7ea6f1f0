package model

import "time"

// Rate is the tariff sheet applied to loans. Fine computation using
// these values happens server-side.
type Rate struct {
	ID                int64     `json:"id"`
	DailyRentalRate   int64     `json:"dailyRentalRate"`
	DailyFineRate     int64     `json:"dailyFineRate"`
	RepairChargePct   float64   `json:"repairChargePct"`
	EffectiveFrom     time.Time `json:"effectiveFrom"`
	EffectiveUntil    time.Time `json:"effectiveUntil"`
	UpdatedByUsername string    `json:"updatedBy,omitempty"`
}

// UpdateRateRequest replaces the current tariff values.
type UpdateRateRequest struct {
	DailyRentalRate int64     `json:"dailyRentalRate"`
	DailyFineRate   int64     `json:"dailyFineRate"`
	RepairChargePct float64   `json:"repairChargePct"`
	EffectiveFrom   time.Time `json:"effectiveFrom"`
}
