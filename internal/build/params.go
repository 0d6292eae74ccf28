package build

import "fmt"

// BeamParams holds the energy-source settings entered in the main window form.
type BeamParams struct {
	SpotSize float32 `json:"spot_size"` // microns
	Power    float32 `json:"power"`     // watts
}

// DefaultBeamParams returns the startup beam settings (100 µm spot, 100 W).
func DefaultBeamParams() BeamParams {
	return BeamParams{SpotSize: 100, Power: 100}
}

// Validate rejects non-positive spot size or power.
func (b BeamParams) Validate() error {
	if b.SpotSize <= 0 {
		return fmt.Errorf("spot size must be positive, got %g", b.SpotSize)
	}
	if b.Power <= 0 {
		return fmt.Errorf("beam power must be positive, got %g", b.Power)
	}
	return nil
}

// RecoaterSettings holds the recoater blade parameters edited in the recoater
// dialog.
type RecoaterSettings struct {
	AdvanceVelocity float32 `json:"advance_velocity"` // mm/s
	RetractVelocity float32 `json:"retract_velocity"` // mm/s
	DwellTime       float32 `json:"dwell_time"`       // seconds
	FullRepeats     int     `json:"full_repeats"`
	CycleRepeats    int     `json:"cycle_repeats"`
}

// DefaultRecoaterSettings returns the recoater defaults shown when the dialog
// is first opened.
func DefaultRecoaterSettings() RecoaterSettings {
	return RecoaterSettings{
		AdvanceVelocity: 10,
		RetractVelocity: 15,
		DwellTime:       2,
		FullRepeats:     1,
		CycleRepeats:    1,
	}
}

// Validate rejects non-positive velocities and repeats and negative dwell time.
func (r RecoaterSettings) Validate() error {
	if r.AdvanceVelocity <= 0 || r.RetractVelocity <= 0 {
		return fmt.Errorf("recoater velocities must be positive")
	}
	if r.DwellTime < 0 {
		return fmt.Errorf("dwell time must not be negative")
	}
	if r.FullRepeats < 1 || r.CycleRepeats < 1 {
		return fmt.Errorf("repeat counts must be at least 1")
	}
	return nil
}

// Options are the boolean build options toggled in the main window.
type Options struct {
	HeatBalance    bool `json:"heat_balance"`
	JumpSafe       bool `json:"jump_safe"`
	SplatterSafe   bool `json:"splatter_safe"`
	TriggeredStart bool `json:"triggered_start"`
}
