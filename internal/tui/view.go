package tui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/chordbind/internal/config"
	"github.com/ja-he/chordbind/internal/host"
	"github.com/ja-he/chordbind/internal/input"
	"github.com/ja-he/chordbind/internal/potatolog"
)

// Renderer is what the ActionView draws to.
type Renderer interface {
	Dimensions() (x, y, w, h int)
	Clear()
	Show()
	DrawText(x, y, w int, style tcell.Style, text string)
	DrawBox(x, y, w, h int, style tcell.Style)
}

// ActionView draws every registered action, highlighting the active ones, and
// the most recent log entries below.
//
// An action fades from the active to the inactive color over a few frames
// after it stops being active.
type ActionView struct {
	renderer  Renderer
	logReader potatolog.LogReader

	active     colorful.Color
	inactive   colorful.Color
	background colorful.Color

	lastActive map[string]uint64

	metrics host.MetricsGetter
}

// fadeFrames is the number of frames over which an action fades out.
const fadeFrames = 10

// NewActionView returns a pointer to a new ActionView using the given colors.
func NewActionView(
	renderer Renderer,
	logReader potatolog.LogReader,
	colors config.Colors,
) (*ActionView, error) {
	active, err := colorful.Hex(colors.Active)
	if err != nil {
		return nil, fmt.Errorf("invalid active color '%s': %w", colors.Active, err)
	}
	inactive, err := colorful.Hex(colors.Inactive)
	if err != nil {
		return nil, fmt.Errorf("invalid inactive color '%s': %w", colors.Inactive, err)
	}
	background, err := colorful.Hex(colors.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color '%s': %w", colors.Background, err)
	}

	return &ActionView{
		renderer:   renderer,
		logReader:  logReader,
		active:     active,
		inactive:   inactive,
		background: background,
		lastActive: make(map[string]uint64),
	}, nil
}

// SetMetrics sets the step metrics to show in the title.
func (v *ActionView) SetMetrics(metrics host.MetricsGetter) {
	v.metrics = metrics
}

// ColorFor returns the color an action is drawn in on the given frame, given
// the frame it was last active on (0 for never).
func (v *ActionView) ColorFor(frame, lastActive uint64) colorful.Color {
	switch {
	case lastActive == 0 || frame < lastActive || frame-lastActive >= fadeFrames:
		return v.inactive
	case frame == lastActive:
		return v.active
	}
	t := float64(frame-lastActive) / fadeFrames
	return v.active.BlendLab(v.inactive, t).Clamped()
}

// Draw draws the view for the given frame. It can be used as a host.System.
func (v *ActionView) Draw(frame uint64, registry *input.Registry) {
	v.renderer.Clear()
	v.draw(frame, registry)
	v.renderer.Show()
}

func (v *ActionView) draw(frame uint64, registry *input.Registry) {
	x, y, w, h := v.renderer.Dimensions()
	bg := tcellColor(v.background)
	base := tcell.StyleDefault.Background(bg).Foreground(tcellColor(v.inactive))

	v.renderer.DrawBox(x, y, w, h, base)

	title := fmt.Sprintf(" frame %d | %s | ctrl-c to quit ", frame, registry.State())
	if v.metrics != nil {
		title = fmt.Sprintf(" frame %d | %s | step %dus (avg %dus) | ctrl-c to quit ", frame, registry.State(), v.metrics.GetLast(), v.metrics.Avg())
	}
	v.renderer.DrawText(x, y, w, base.Bold(true), title)

	names := make([]string, 0)
	forms := make(map[string][]string)
	for _, e := range registry.Entries() {
		if _, ok := forms[e.Name]; !ok {
			names = append(names, e.Name)
		}
		forms[e.Name] = append(forms[e.Name], fmt.Sprintf("%s (%s)", e.Binding.CanonicalForm(), e.Binding.Mode()))
	}
	sort.Strings(names)

	row := y + 2
	for _, name := range names {
		if row >= y+h {
			return
		}
		if registry.IsActive(name) {
			v.lastActive[name] = frame
		}
		style := base.Foreground(tcellColor(v.ColorFor(frame, v.lastActive[name])))
		if registry.IsActive(name) {
			style = style.Bold(true)
		}
		v.renderer.DrawText(x+1, row, 20, style, name)
		for i, form := range forms[name] {
			if i > 0 {
				row++
			}
			if row >= y+h {
				return
			}
			v.renderer.DrawText(x+22, row, w-22, base, form)
		}
		row++
	}

	if v.logReader == nil {
		return
	}
	row++
	for _, entry := range v.logReader.Tail(y + h - row) {
		if row >= y+h {
			break
		}
		v.renderer.DrawText(x+1, row, w-1, base, fmt.Sprintf("%-5v %v", entry["level"], entry["message"]))
		row++
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
