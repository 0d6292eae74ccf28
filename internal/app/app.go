// Package app wires the widgets, the build sequence, and the 3D scene into
// one controller. All state changes flow through here: widget events mutate
// the sequence store or the preferences, and the store change callback
// refreshes the list and the scene overlay.
package app

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"buildstudio/internal/appconfig"
	"buildstudio/internal/build"
	"buildstudio/internal/debug"
	"buildstudio/internal/fonts"
	"buildstudio/internal/logger"
	"buildstudio/internal/scene"
	"buildstudio/internal/sequence"
	"buildstudio/internal/ui"
)

var layoutPaths = []string{"assets/ui/main_window.yaml", "../../assets/ui/main_window.yaml"}
var stylePaths = []string{"assets/ui/style.css", "../../assets/ui/style.css"}

// App owns the whole application state. One instance exists; its Update and
// Draw run once per frame on the main goroutine.
type App struct {
	log   *logger.Logger
	prefs appconfig.Prefs

	sheet *ui.Stylesheet
	win   ui.WindowSpec
	main  *ui.Engine
	h     handles

	scn   *scene.Scene
	store *sequence.Store
	dbg   *debug.Overlay

	// modal, when set, receives all input instead of the main window.
	modal *ui.Engine

	font         rl.Font
	hasFont      bool
	assetsLoaded bool
}

// handles are the main-window widgets the controller talks to. All of them
// are resolved once at startup; a missing id in the layout file is a startup
// error, not a nil panic three clicks in.
type handles struct {
	stepList *ui.Node
	status   *ui.Node

	spotSize    *ui.Node
	beamPower   *ui.Node
	layerHeight *ui.Node

	heatBalance    *ui.Node
	jumpSafe       *ui.Node
	splatterSafe   *ui.Node
	triggeredStart *ui.Node
}

func resolveHandles(e *ui.Engine) (handles, error) {
	var h handles
	var err error
	lookup := func(id string) *ui.Node {
		if err != nil {
			return nil
		}
		var n *ui.Node
		if n, err = e.Lookup(id); err != nil {
			return nil
		}
		return n
	}
	h.stepList = lookup("build_step_list")
	h.status = lookup("status_bar")
	h.spotSize = lookup("le_spotsize")
	h.beamPower = lookup("le_beampower")
	h.layerHeight = lookup("le_layerheight")
	h.heatBalance = lookup("enable_heatbalance")
	h.jumpSafe = lookup("enable_jumpsafe")
	h.splatterSafe = lookup("enable_splattersafe")
	h.triggeredStart = lookup("enable_triggeredstart")
	return h, err
}

// New loads the layout and stylesheet, builds the widget tree, and registers
// every event handler. It does not touch the GPU, so it runs before the
// window opens.
func New(log *logger.Logger, prefs appconfig.Prefs) (*App, error) {
	sheet, err := loadStylesheet(stylePaths...)
	if err != nil {
		return nil, err
	}
	layout, err := ui.LoadLayout(layoutPaths...)
	if err != nil {
		return nil, err
	}
	eng, err := ui.NewEngine(sheet, layout.Nodes, layout.Window.Width, layout.Window.Height)
	if err != nil {
		return nil, err
	}
	h, err := resolveHandles(eng)
	if err != nil {
		return nil, err
	}

	a := &App{
		log:   log,
		prefs: prefs,
		sheet: sheet,
		win:   layout.Window,
		main:  eng,
		h:     h,
		scn:   scene.New(),
		store: sequence.New(),
		dbg:   debug.New(),
	}
	a.dbg.ShowFPS = prefs.ShowFPS
	a.dbg.ShowMemAlloc = prefs.ShowFPS
	a.store.SetOnChange(a.refresh)

	if err := a.wire(); err != nil {
		return nil, err
	}
	a.applyPrefs()
	a.refresh()
	log.Info("application ready",
		zap.String("layout", layout.Window.Title),
		zap.Int32("width", layout.Window.Width),
		zap.Int32("height", layout.Window.Height))
	return a, nil
}

// Title, Width and Height expose the window block of the layout file.
func (a *App) Title() string { return a.win.Title }
func (a *App) Width() int32  { return a.win.Width }
func (a *App) Height() int32 { return a.win.Height }

// wire registers every main-window event. Registration errors mean the
// layout file and this list disagree, which is fatal at startup.
func (a *App) wire() error {
	regs := []error{
		a.main.OnSubmit("le_spotsize", a.submitSpotSize),
		a.main.OnSubmit("le_beampower", a.submitBeamPower),
		a.main.OnSubmit("le_layerheight", a.submitLayerHeight),

		a.main.OnClick("btn_add_buildstep", a.addStep),
		a.main.OnClick("btn_edit_buildstep", a.editStep),
		a.main.OnClick("btn_del_buildstep", a.deleteStep),
		a.main.OnClick("btn_move_up", a.moveStepUp),
		a.main.OnClick("btn_move_down", a.moveStepDown),
		a.main.OnClick("btn_recoater_settings", a.openRecoater),
		a.main.OnClick("btn_genpackage", a.generatePackage),

		a.main.OnToggle("enable_heatbalance", func(on bool) { a.setOption("heat balance", &a.prefs.Options.HeatBalance, on) }),
		a.main.OnToggle("enable_jumpsafe", func(on bool) { a.setOption("jump safe", &a.prefs.Options.JumpSafe, on) }),
		a.main.OnToggle("enable_splattersafe", func(on bool) { a.setOption("splatter safe", &a.prefs.Options.SplatterSafe, on) }),
		a.main.OnToggle("enable_triggeredstart", func(on bool) { a.setOption("triggered start", &a.prefs.Options.TriggeredStart, on) }),
	}
	for _, err := range regs {
		if err != nil {
			return err
		}
	}
	return nil
}

// applyPrefs pushes loaded preferences into the widgets.
func (a *App) applyPrefs() {
	a.h.spotSize.Text = fmtFloat(a.prefs.Beam.SpotSize)
	a.h.beamPower.Text = fmtFloat(a.prefs.Beam.Power)
	a.h.layerHeight.Text = fmtFloat(a.prefs.LayerHeight)
	a.h.heatBalance.Checked = a.prefs.Options.HeatBalance
	a.h.jumpSafe.Checked = a.prefs.Options.JumpSafe
	a.h.splatterSafe.Checked = a.prefs.Options.SplatterSafe
	a.h.triggeredStart.Checked = a.prefs.Options.TriggeredStart
}

// refresh rebuilds everything derived from the sequence and the beam
// parameters: the list rows and the scene overlay.
func (a *App) refresh() {
	a.h.stepList.SetItems(a.store.Labels())
	a.scn.SetOverlay(scene.BuildOverlay(a.store.Steps(), a.prefs.LayerHeight, a.prefs.Beam.SpotSize))
}

func (a *App) savePrefs() {
	if err := appconfig.Save(a.prefs); err != nil {
		a.log.Warn("could not save preferences", zap.Error(err))
	}
}

// Update runs once per frame before drawing. A modal dialog, when open,
// swallows all input.
func (a *App) Update() {
	if !a.assetsLoaded {
		a.loadAssets()
		a.assetsLoaded = true
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		a.dbg.Toggle()
		a.prefs.ShowFPS = a.dbg.ShowFPS
		a.savePrefs()
	}
	a.h.status.Text = a.log.Last()
	if a.modal != nil {
		a.modal.Update()
		return
	}
	a.main.Update()
}

// Draw renders the frame: 3D scene first, widgets over it, modal dialog and
// debug counters on top.
func (a *App) Draw() {
	a.scn.Draw()
	a.main.Draw()
	if a.modal != nil {
		a.modal.Draw()
	}
	a.dbg.Draw()
}

// loadAssets runs on the first frame, after the GL context exists. Fonts
// cannot load earlier.
func (a *App) loadAssets() {
	path := fonts.Find()
	if path == "" {
		return
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		a.log.Warn("font failed to load", zap.String("path", path))
		return
	}
	a.font = f
	a.hasFont = true
	a.main.SetFont(a.font)
	a.log.Info("font loaded", zap.String("path", path))
}

// openModal installs a dialog engine as the input target.
func (a *App) openModal(e *ui.Engine) {
	if a.hasFont {
		e.SetFont(a.font)
	}
	a.modal = e
}

func (a *App) closeModal() {
	a.modal = nil
}

// notice shows a one-button message dialog.
func (a *App) notice(message string) {
	e, err := ui.NewNotice(a.sheet, a.win.Width, a.win.Height, message)
	if err != nil {
		a.log.Error("could not build notice dialog", zap.Error(err))
		return
	}
	if err := e.OnClick(ui.DialogOK, a.closeModal); err != nil {
		a.log.Error("could not wire notice dialog", zap.Error(err))
		return
	}
	a.openModal(e)
}

// confirm shows a Yes/No dialog and runs onYes after closing it.
func (a *App) confirm(message string, onYes func()) {
	e, err := ui.NewConfirm(a.sheet, a.win.Width, a.win.Height, message)
	if err != nil {
		a.log.Error("could not build confirm dialog", zap.Error(err))
		return
	}
	regs := []error{
		e.OnClick(ui.DialogOK, func() {
			a.closeModal()
			onYes()
		}),
		e.OnClick(ui.DialogCancel, a.closeModal),
	}
	for _, err := range regs {
		if err != nil {
			a.log.Error("could not wire confirm dialog", zap.Error(err))
			return
		}
	}
	a.openModal(e)
}

// submitSpotSize handles Enter in the spot size field. Invalid input reverts
// the field and tells the user; the stored value never goes bad.
func (a *App) submitSpotSize(text string) {
	v, err := parsePositiveFloat(text)
	if err != nil {
		a.h.spotSize.Text = fmtFloat(a.prefs.Beam.SpotSize)
		a.notice("Spot size must be a positive number.")
		return
	}
	a.prefs.Beam.SpotSize = v
	a.savePrefs()
	a.refresh()
	a.log.Info("spot size set", zap.Float32("microns", v))
}

func (a *App) submitBeamPower(text string) {
	v, err := parsePositiveFloat(text)
	if err != nil {
		a.h.beamPower.Text = fmtFloat(a.prefs.Beam.Power)
		a.notice("Beam power must be a positive number.")
		return
	}
	a.prefs.Beam.Power = v
	a.savePrefs()
	a.log.Info("beam power set", zap.Float32("watts", v))
}

func (a *App) submitLayerHeight(text string) {
	v, err := parsePositiveFloat(text)
	if err != nil {
		a.h.layerHeight.Text = fmtFloat(a.prefs.LayerHeight)
		a.notice("Layer height must be a positive number.")
		return
	}
	a.prefs.LayerHeight = v
	a.savePrefs()
	a.refresh()
	a.log.Info("layer height set", zap.Float32("mm", v))
}

func (a *App) setOption(name string, target *bool, on bool) {
	*target = on
	a.savePrefs()
	a.log.Info("build option changed", zap.String("option", name), zap.Bool("enabled", on))
}

// addStep opens the step dialog with defaults; OK appends to the sequence.
func (a *App) addStep() {
	a.openStepDialog("Add Build Step", defaultStepForm(), func(s build.Step) error {
		a.store.Add(s)
		a.h.stepList.Selected = a.store.Len() - 1
		a.log.Info("build step added", zap.String("step", s.Label()))
		return nil
	})
}

// editStep opens the step dialog prefilled with the selected step.
func (a *App) editStep() {
	i := a.h.stepList.Selected
	step, err := a.store.Step(i)
	if err != nil {
		a.notice("Please select a build step to edit.")
		return
	}
	a.openStepDialog("Edit Build Step", formFromStep(step), func(s build.Step) error {
		if err := a.store.Edit(i, s); err != nil {
			return err
		}
		a.log.Info("build step edited", zap.Int("index", i), zap.String("step", s.Label()))
		return nil
	})
}

func (a *App) deleteStep() {
	i := a.h.stepList.Selected
	step, err := a.store.Step(i)
	if err != nil {
		a.notice("Please select a build step to delete.")
		return
	}
	a.confirm(fmt.Sprintf("Delete step %d?", i+1), func() {
		if err := a.store.Delete(i); err != nil {
			a.log.Warn("delete failed", zap.Int("index", i), zap.Error(err))
			return
		}
		a.log.Info("build step deleted", zap.Int("index", i), zap.String("step", step.Label()))
	})
}

func (a *App) moveStepUp() {
	i := a.h.stepList.Selected
	if err := a.store.MoveUp(i); err != nil {
		return
	}
	a.h.stepList.Selected = i - 1
	a.log.Info("build step moved up", zap.Int("from", i))
}

func (a *App) moveStepDown() {
	i := a.h.stepList.Selected
	if err := a.store.MoveDown(i); err != nil {
		return
	}
	a.h.stepList.Selected = i + 1
	a.log.Info("build step moved down", zap.Int("from", i))
}

// generatePackage is the stub behind the generate button. The machine-facing
// output format is out of scope here.
func (a *App) generatePackage() {
	a.log.Info("build package requested",
		zap.Int("steps", a.store.Len()),
		zap.Float32("spot_size", a.prefs.Beam.SpotSize),
		zap.Float32("beam_power", a.prefs.Beam.Power))
	a.notice("Build package generation is not available in this build.")
}

func loadStylesheet(paths ...string) (*ui.Stylesheet, error) {
	var firstErr error
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sheet, err := ui.ParseCSS(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return sheet, nil
	}
	return nil, fmt.Errorf("no stylesheet found: %w", firstErr)
}
