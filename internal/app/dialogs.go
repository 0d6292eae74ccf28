package app

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"buildstudio/internal/build"
	"buildstudio/internal/ui"
)

var recoaterLayoutPaths = []string{"assets/ui/recoater.yaml", "../../assets/ui/recoater.yaml"}

// openStepDialog shows the add/edit form. The shape and pattern buttons cycle
// through their choices; OK validates the whole form and calls apply with the
// finished step. Validation errors stay inside the dialog.
func (a *App) openStepDialog(title string, f stepForm, apply func(build.Step) error) {
	rows := []ui.FormRow{
		{Label: "Shape", ID: "shape", Kind: ui.KindButton, Value: capitalize(string(f.Shape))},
		{Label: "Size / Width / Dia [mm]", ID: "dim_a", Kind: ui.KindField, Value: f.DimA},
		{Label: "Length [mm]", ID: "dim_b", Kind: ui.KindField, Value: f.DimB},
		{Label: "Repetitions", ID: "reps", Kind: ui.KindField, Value: f.Reps},
		{Label: "X Offset [mm]", ID: "xoff", Kind: ui.KindField, Value: f.XOff},
		{Label: "Y Offset [mm]", ID: "yoff", Kind: ui.KindField, Value: f.YOff},
		{Label: "Starting Layer", ID: "layer", Kind: ui.KindField, Value: f.Layer},
		{Label: "Hatching", ID: "hatch_on", Kind: ui.KindCheckbox, Checked: f.HatchOn},
		{Label: "Hatch Pattern", ID: "hatch_pattern", Kind: ui.KindButton, Value: capitalize(string(f.Pattern))},
		{Label: "Hatch Spacing [mm]", ID: "hatch_spacing", Kind: ui.KindField, Value: f.Spacing},
		{Label: "Spot Multiplier", ID: "hatch_mult", Kind: ui.KindField, Value: f.Mult},
		{Label: "Hatch Angle [deg]", ID: "hatch_angle", Kind: ui.KindField, Value: f.Angle},
	}
	e, err := ui.NewFormDialog(a.sheet, a.win.Width, a.win.Height, title, rows)
	if err != nil {
		a.log.Error("could not build step dialog", zap.Error(err))
		return
	}
	w, err := dialogWidgets(e, "shape", "dim_a", "dim_b", "reps", "xoff", "yoff",
		"layer", "hatch_on", "hatch_pattern", "hatch_spacing", "hatch_mult", "hatch_angle",
		ui.DialogMessage)
	if err != nil {
		a.log.Error("could not resolve step dialog widgets", zap.Error(err))
		return
	}

	regs := []error{
		e.OnClick("shape", func() {
			f.Shape = nextShape(f.Shape)
			w["shape"].Text = capitalize(string(f.Shape))
		}),
		e.OnClick("hatch_pattern", func() {
			f.Pattern = nextPattern(f.Pattern)
			w["hatch_pattern"].Text = capitalize(string(f.Pattern))
		}),
		e.OnClick(ui.DialogOK, func() {
			e.Blur()
			f.DimA = w["dim_a"].Text
			f.DimB = w["dim_b"].Text
			f.Reps = w["reps"].Text
			f.XOff = w["xoff"].Text
			f.YOff = w["yoff"].Text
			f.Layer = w["layer"].Text
			f.HatchOn = w["hatch_on"].Checked
			f.Spacing = w["hatch_spacing"].Text
			f.Mult = w["hatch_mult"].Text
			f.Angle = w["hatch_angle"].Text

			step, err := f.toStep()
			if err != nil {
				w[ui.DialogMessage].Text = capitalize(err.Error())
				return
			}
			if err := apply(step); err != nil {
				a.closeModal()
				a.log.Warn("step no longer exists", zap.Error(err))
				a.notice("The selected build step no longer exists.")
				return
			}
			a.closeModal()
		}),
		e.OnClick(ui.DialogCancel, a.closeModal),
	}
	for _, err := range regs {
		if err != nil {
			a.log.Error("could not wire step dialog", zap.Error(err))
			return
		}
	}
	a.openModal(e)
}

// openRecoater shows the recoater settings dialog, whose widget tree comes
// from its own layout file.
func (a *App) openRecoater() {
	layout, err := ui.LoadLayout(recoaterLayoutPaths...)
	if err != nil {
		a.log.Error("could not load recoater layout", zap.Error(err))
		return
	}
	e, err := ui.NewEngine(a.sheet, layout.Nodes, a.win.Width, a.win.Height)
	if err != nil {
		a.log.Error("could not build recoater dialog", zap.Error(err))
		return
	}
	w, err := dialogWidgets(e, "rec_advance", "rec_retract", "rec_dwell",
		"rec_full", "rec_cycle", "rec_message")
	if err != nil {
		a.log.Error("could not resolve recoater widgets", zap.Error(err))
		return
	}

	r := a.prefs.Recoater
	w["rec_advance"].Text = fmtFloat(r.AdvanceVelocity)
	w["rec_retract"].Text = fmtFloat(r.RetractVelocity)
	w["rec_dwell"].Text = fmtFloat(r.DwellTime)
	w["rec_full"].Text = strconv.Itoa(r.FullRepeats)
	w["rec_cycle"].Text = strconv.Itoa(r.CycleRepeats)

	regs := []error{
		e.OnClick("rec_ok", func() {
			e.Blur()
			next, err := recoaterFromFields(
				w["rec_advance"].Text,
				w["rec_retract"].Text,
				w["rec_dwell"].Text,
				w["rec_full"].Text,
				w["rec_cycle"].Text,
			)
			if err != nil {
				w["rec_message"].Text = capitalize(err.Error())
				return
			}
			a.prefs.Recoater = next
			a.savePrefs()
			a.log.Info("recoater settings updated",
				zap.Float32("advance", next.AdvanceVelocity),
				zap.Float32("retract", next.RetractVelocity))
			a.closeModal()
		}),
		e.OnClick("rec_cancel", a.closeModal),
	}
	for _, err := range regs {
		if err != nil {
			a.log.Error("could not wire recoater dialog", zap.Error(err))
			return
		}
	}
	a.openModal(e)
}

// recoaterFromFields parses the five dialog fields and validates the result
// as a unit.
func recoaterFromFields(advance, retract, dwell, full, cycle string) (build.RecoaterSettings, error) {
	var r build.RecoaterSettings
	var err error
	if r.AdvanceVelocity, err = parseFloatField(advance); err != nil {
		return r, fmt.Errorf("advance velocity must be a number")
	}
	if r.RetractVelocity, err = parseFloatField(retract); err != nil {
		return r, fmt.Errorf("retract velocity must be a number")
	}
	if r.DwellTime, err = parseFloatField(dwell); err != nil {
		return r, fmt.Errorf("dwell time must be a number")
	}
	if r.FullRepeats, err = strconv.Atoi(strings.TrimSpace(full)); err != nil {
		return r, fmt.Errorf("full repeats must be a whole number")
	}
	if r.CycleRepeats, err = strconv.Atoi(strings.TrimSpace(cycle)); err != nil {
		return r, fmt.Errorf("cycle repeats must be a whole number")
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// dialogWidgets resolves a set of ids on a dialog engine into a map.
func dialogWidgets(e *ui.Engine, ids ...string) (map[string]*ui.Node, error) {
	w := make(map[string]*ui.Node, len(ids))
	for _, id := range ids {
		n, err := e.Lookup(id)
		if err != nil {
			return nil, err
		}
		w[id] = n
	}
	return w, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
