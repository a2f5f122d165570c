package components

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/swipesearch/internal/animation"
	"github.com/hy4ri/swipesearch/internal/tui/state"
)

// frameInterval paces the animation loop.
const frameInterval = time.Second / 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// SearchField is a pill-shaped search input that expands when focused and
// collapses when blurred. Width, height and font size animate between the
// two states.
//
// The text value is controlled: the caller passes it in with SetValue and
// hears about edits through the change callback. The field keeps its own
// selection.
type SearchField struct {
	id    int
	opts  Options
	clock animation.Clock

	store       *state.Store
	unsubscribe func()

	input         textinput.Model
	value         string
	onValueChange func(string)

	width, height int

	widthAnim  animation.Animator
	heightAnim animation.Animator
	fontAnim   animation.Animator
	ticking    bool

	drag      dragTracker
	dragAccum float64

	layout   Layout
	disposed bool
}

// NewSearchField mounts a field showing value. onValueChange receives every
// edit; when it is nil the field keeps the value itself.
func NewSearchField(value string, onValueChange func(string), opts Options) *SearchField {
	clock := opts.Clock
	if clock == nil {
		clock = animation.SystemClock{}
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = opts.Input.CharLimit
	if opts.Input.Validate != nil {
		ti.Validate = opts.Input.Validate
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	value = capText(value, opts.Input.CharLimit)
	ti.SetValue(value)

	f := &SearchField{
		id:            nextID(),
		opts:          opts,
		clock:         clock,
		input:         ti,
		value:         value,
		onValueChange: onValueChange,
		widthAnim:     opts.newAnimator(opts.InitialWidth),
		heightAnim:    opts.newAnimator(opts.InitialHeight),
		fontAnim:      opts.newAnimator(opts.InitialFontSize),
	}
	f.store = state.NewStore(state.FieldState{
		Text:      value,
		Selection: state.Caret(len([]rune(value))),
	})
	f.unsubscribe = f.store.Subscribe(f.onStateChange)
	f.relayout()
	return f
}

// ID identifies the field's frame messages.
func (f *SearchField) ID() int { return f.id }

// Store exposes the field's state store so callers can observe it.
func (f *SearchField) Store() *state.Store { return f.store }

// State returns the current field state.
func (f *SearchField) State() state.FieldState { return f.store.Get() }

// Layout returns the most recent layout.
func (f *SearchField) Layout() Layout { return f.layout }

// Focused implements Focusable.
func (f *SearchField) Focused() bool { return f.store.Get().Focused }

// Value implements Controlled.
func (f *SearchField) Value() string { return f.value }

// Disposed reports whether the field has been unmounted.
func (f *SearchField) Disposed() bool { return f.disposed }

// Targets returns where the three animated properties are heading.
func (f *SearchField) Targets() state.AnimationTargets {
	return state.AnimationTargets{
		Width:    f.widthAnim.Target(),
		Height:   f.heightAnim.Target(),
		FontSize: f.fontAnim.Target(),
	}
}

// Current returns the animated properties as of the last frame.
func (f *SearchField) Current() state.AnimationTargets {
	return state.AnimationTargets{
		Width:    f.widthAnim.Value(),
		Height:   f.heightAnim.Value(),
		FontSize: f.fontAnim.Value(),
	}
}

// Animating reports whether any property is still moving.
func (f *SearchField) Animating() bool {
	return f.widthAnim.Active() || f.heightAnim.Active() || f.fontAnim.Active()
}

// Init implements Component.
func (f *SearchField) Init() tea.Cmd {
	return f.frameCmd()
}

// SetSize implements Component. The size is the container the pill is
// placed in; an expanded field retargets to the new bounds.
func (f *SearchField) SetSize(width, height int) {
	if f.disposed || (width == f.width && height == f.height) {
		return
	}
	f.width, f.height = width, height
	if f.Focused() {
		targets := state.TargetsFor(f.opts.dimensions(), true, f.constraints())
		now := f.clock.Now()
		retargetOrJump(f.widthAnim, targets.Width, now)
		retargetOrJump(f.heightAnim, targets.Height, now)
		retargetOrJump(f.fontAnim, targets.FontSize, now)
	}
	f.relayout()
}

// SetValue implements Controlled. A value that differs from the field's
// text is applied like typed input but not echoed to the change callback.
// Text past the character limit is dropped; Value reports what was kept.
func (f *SearchField) SetValue(v string) {
	if f.disposed {
		return
	}
	v = capText(v, f.opts.Input.CharLimit)
	f.value = v
	if v != f.store.Get().Text {
		f.store.Update(func(s state.FieldState) state.FieldState {
			return state.ApplyText(s, v)
		})
	}
	f.relayout()
}

// Focus implements Focusable.
func (f *SearchField) Focus() tea.Cmd {
	return f.OnFocusChanged(true)
}

// Blur implements Focusable.
func (f *SearchField) Blur() tea.Cmd {
	return f.OnFocusChanged(false)
}

// OnFocusChanged moves the field between collapsed and expanded and starts
// the animations toward the new targets.
func (f *SearchField) OnFocusChanged(focused bool) tea.Cmd {
	if f.disposed || (focused && !f.opts.Enabled) {
		return nil
	}
	f.store.Update(func(s state.FieldState) state.FieldState {
		return state.ApplyFocus(s, focused)
	})
	return f.frameCmd()
}

// OnBackgroundTap collapses the field.
func (f *SearchField) OnBackgroundTap() tea.Cmd {
	return f.Blur()
}

// OnTextChanged applies new text from the input and forwards it to the
// change callback.
func (f *SearchField) OnTextChanged(text string) {
	if f.disposed {
		return
	}
	text = capText(text, f.opts.Input.CharLimit)
	f.store.Update(func(s state.FieldState) state.FieldState {
		return state.ApplyText(s, text)
	})
	if f.onValueChange != nil {
		f.onValueChange(text)
	} else {
		f.value = text
	}
	if !f.disposed {
		f.relayout()
	}
}

// OnVerticalDrag accumulates a vertical drag step. Crossing the threshold
// downward focuses the field, crossing it upward blurs it; the accumulator
// restarts after each crossing.
func (f *SearchField) OnVerticalDrag(delta float64) tea.Cmd {
	if f.disposed || !f.opts.DragToFocus || !f.opts.Enabled {
		return nil
	}
	f.dragAccum += delta
	switch {
	case f.dragAccum > f.opts.DragThreshold:
		f.dragAccum = 0
		log.Printf("searchfield %d: drag past +%.0f", f.id, f.opts.DragThreshold)
		return f.Focus()
	case f.dragAccum < -f.opts.DragThreshold:
		f.dragAccum = 0
		log.Printf("searchfield %d: drag past -%.0f", f.id, f.opts.DragThreshold)
		return f.Blur()
	}
	return nil
}

// Dispose implements Disposable. Animations stop where they are, the store
// drops its subscribers and no callback fires afterwards.
func (f *SearchField) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	for _, a := range []animation.Animator{f.widthAnim, f.heightAnim, f.fontAnim} {
		a.Jump(a.Value())
	}
	f.ticking = false
	f.unsubscribe()
	f.store.Dispose()
	f.input.Blur()
	log.Printf("searchfield %d: disposed", f.id)
}

// Update implements Component.
func (f *SearchField) Update(msg tea.Msg) (Component, tea.Cmd) {
	if f.disposed {
		return f, nil
	}

	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != f.id {
			return f, nil
		}
		return f, f.onFrame()

	case tea.WindowSizeMsg:
		f.SetSize(msg.Width, msg.Height)
		return f, f.frameCmd()

	case tea.MouseMsg:
		return f, f.handleMouse(msg)

	case tea.KeyMsg:
		return f, f.handleKey(msg)
	}

	// Paste results and other engine messages.
	if f.Focused() {
		return f, f.updateInput(msg)
	}
	return f, nil
}

func (f *SearchField) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !f.Focused() {
		return nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		text := f.store.Get().Text
		cmd := f.Blur()
		if f.opts.Actions.OnCancel != nil {
			f.opts.Actions.OnCancel(text)
		}
		return cmd
	case tea.KeyEnter:
		if f.opts.Actions.OnSearch != nil {
			f.opts.Actions.OnSearch(f.store.Get().Text)
		}
		return nil
	}

	if s := f.store.Get(); !f.opts.ReadOnly && !s.Selection.Collapsed() {
		switch {
		case msg.Type == tea.KeyLeft:
			f.moveCaret(s.Selection.Start)
			return nil
		case msg.Type == tea.KeyRight:
			f.moveCaret(s.Selection.End)
			return nil
		case msg.Type == tea.KeyBackspace, msg.Type == tea.KeyDelete:
			f.OnTextChanged(f.removeSelection(s))
			return nil
		case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace, key.Matches(msg, f.input.KeyMap.Paste):
			// Typed text replaces the selection.
			f.removeSelection(s)
		}
	}

	return f.updateInput(msg)
}

// updateInput runs msg through the editing engine and routes any text
// change through OnTextChanged.
func (f *SearchField) updateInput(msg tea.Msg) tea.Cmd {
	before, beforePos := f.input.Value(), f.input.Position()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	after := f.input.Value()

	if f.opts.ReadOnly {
		if after != before {
			f.input.SetValue(before)
			f.input.SetCursor(beforePos)
		}
		f.moveCaret(f.input.Position())
		return cmd
	}

	// Only an edit made by this message counts. The engine may hold a
	// sanitized copy of the text, which is not a change.
	if after != before && after != f.store.Get().Text {
		f.OnTextChanged(after)
		return cmd
	}
	f.moveCaret(f.input.Position())
	return cmd
}

// removeSelection deletes the selected runes from the editing engine and
// returns the remaining text. The store is left for the caller to update.
func (f *SearchField) removeSelection(s state.FieldState) string {
	runes := []rune(s.Text)
	sel := clampSelection(s.Selection, len(runes))
	rest := string(runes[:sel.Start]) + string(runes[sel.End:])
	f.input.SetValue(rest)
	f.input.SetCursor(sel.Start)
	return rest
}

func (f *SearchField) moveCaret(pos int) {
	f.store.Update(func(s state.FieldState) state.FieldState {
		return state.MoveCaret(s, pos)
	})
	f.relayout()
}

func (f *SearchField) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !f.opts.Enabled {
		return nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		return f.OnVerticalDrag(f.opts.WheelUnits)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		return f.OnVerticalDrag(-f.opts.WheelUnits)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		f.drag.press(msg.X, msg.Y)
		f.dragAccum = 0
	case msg.Action == tea.MouseActionMotion && f.drag.active():
		rows, ok := f.drag.motion(msg.X, msg.Y)
		if ok && rows != 0 {
			return f.OnVerticalDrag(float64(rows) * f.opts.RowUnits)
		}
	case msg.Action == tea.MouseActionRelease:
		tap, x, y := f.drag.release()
		f.dragAccum = 0
		if !tap {
			return nil
		}
		if f.layout.Pill.Contains(x, y) {
			return f.Focus()
		}
		return f.OnBackgroundTap()
	}
	return nil
}

// onStateChange is the store subscriber: it retargets the animations on a
// phase change, keeps the editing engine in step and relays out.
func (f *SearchField) onStateChange(prev, next state.FieldState) {
	if prev.Focused != next.Focused {
		log.Printf("searchfield %d: %s -> %s", f.id, prev.Phase(), next.Phase())
		targets := state.TargetsFor(f.opts.dimensions(), next.Focused, f.constraints())
		now := f.clock.Now()
		f.widthAnim.AnimateTo(targets.Width, now)
		f.heightAnim.AnimateTo(targets.Height, now)
		f.fontAnim.AnimateTo(targets.FontSize, now)

		if next.Focused {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
	}

	if next.Text != f.input.Value() {
		f.input.SetValue(next.Text)
	}
	if f.input.Position() != next.Selection.End {
		f.input.SetCursor(next.Selection.End)
	}
	f.relayout()
}

func (f *SearchField) onFrame() tea.Cmd {
	f.ticking = false
	now := f.clock.Now()
	moving := false
	for _, a := range []animation.Animator{f.widthAnim, f.heightAnim, f.fontAnim} {
		if _, settled := a.Advance(now); !settled {
			moving = true
		}
	}
	f.relayout()
	if moving {
		return f.scheduleFrame()
	}
	return nil
}

// frameCmd starts the frame loop if something is animating and no frame is
// already pending.
func (f *SearchField) frameCmd() tea.Cmd {
	if f.disposed || f.ticking || !f.Animating() {
		return nil
	}
	return f.scheduleFrame()
}

func (f *SearchField) scheduleFrame() tea.Cmd {
	f.ticking = true
	id := f.id
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

func (f *SearchField) constraints() state.Constraints {
	return state.Constraints{MaxWidth: float64(f.width), MaxHeight: float64(f.height)}
}

func (f *SearchField) relayout() {
	if f.disposed {
		return
	}
	f.layout = computeLayout(layoutInput{
		state:    f.store.Get(),
		value:    f.value,
		width:    f.widthAnim.Value(),
		height:   f.heightAnim.Value(),
		fontSize: f.fontAnim.Value(),
		areaW:    f.width,
		areaH:    f.height,
		opts:     &f.opts,
	})
	if f.opts.OnTextLayout != nil {
		f.opts.OnTextLayout(f.layout)
	}
}

// capText keeps the first limit runes of s. A limit of zero or less keeps
// everything.
func capText(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	if r := []rune(s); len(r) > limit {
		return string(r[:limit])
	}
	return s
}

func retargetOrJump(a animation.Animator, target float64, now time.Time) {
	if a.Active() {
		a.AnimateTo(target, now)
		return
	}
	a.Jump(target)
}
