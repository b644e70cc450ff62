package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/image/font"

	"fieldbox/internal/render"
	"fieldbox/internal/ui"
	"fieldbox/pkg/textinput"
)

const digestIterations = 4096

type actionButton struct {
	id     string
	label  string
	r      ui.Rect
	active bool
}

// fieldSlot pairs one input engine with its label and screen placement.
type fieldSlot struct {
	name  string
	label string
	input *textinput.TextInput
	box   ui.Rect
}

type App struct {
	cfg   Config
	theme ui.Theme
	fonts fontBank

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image
	layout      ui.Layout

	fields   []*fieldSlot
	focusIdx int

	clip   *systemClipboard
	sounds *beeper

	topActions []actionButton
	charBuf    []rune
	// charKeys maps held printable keys to the rune they produced, so the
	// matching release can stop that rune's repeat timer.
	charKeys map[ebiten.Key]rune

	statusMsg string
	digest    string
}

func New() (*App, error) {
	cfg, err := LoadConfig("fieldbox.toml")
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		theme:    ui.DefaultTheme(),
		fonts:    newFontBank(),
		clip:     newSystemClipboard(),
		sounds:   newBeeper(cfg.Sound),
		charKeys: map[ebiten.Key]rune{},
	}

	if err := a.buildFields(); err != nil {
		return nil, err
	}
	a.focusField(0)
	return a, nil
}

func (a *App) buildFields() error {
	fieldFont := faceFont{face: a.fonts.face(15, false)}

	name, err := textinput.New("Name: ",
		textinput.WithMaxWidth(a.cfg.Input.MaxWidthChars, true),
		textinput.WithHistoryDepth(a.cfg.Input.HistoryDepth),
		textinput.WithKeyRepeat(a.cfg.Input.RepeatInitialMs, a.cfg.Input.RepeatIntervalMs),
		textinput.WithEllipsis(a.cfg.Input.Ellipsis),
		textinput.WithTabSize(a.cfg.Input.TabSize),
		textinput.WithUnderline("_", 0, 2),
		textinput.WithOnChange(func(v any) {
			a.statusMsg = fmt.Sprintf("name changed (%d chars)", len([]rune(v.(string))))
		}),
	)
	if err != nil {
		return err
	}

	amount, err := textinput.New("Amount: ",
		textinput.WithInputType(textinput.InputFloat),
		textinput.WithMaxChars(16),
		textinput.WithHistoryDepth(a.cfg.Input.HistoryDepth),
		textinput.WithKeyRepeat(a.cfg.Input.RepeatInitialMs, a.cfg.Input.RepeatIntervalMs),
		textinput.WithOnReturn(func(v any) {
			a.statusMsg = fmt.Sprintf("amount applied: %.4f", v.(float64))
		}),
	)
	if err != nil {
		return err
	}

	pass, err := textinput.New("Passphrase: ",
		textinput.WithPassword('*'),
		textinput.WithMaxChars(a.cfg.Input.MaxChars),
		textinput.WithHistoryDepth(a.cfg.Input.HistoryDepth),
		textinput.WithKeyRepeat(a.cfg.Input.RepeatInitialMs, a.cfg.Input.RepeatIntervalMs),
	)
	if err != nil {
		return err
	}
	pass.AddUpdateCallback(func(v any) {
		// The digest goes stale as soon as the passphrase is edited.
		a.digest = ""
	})

	a.fields = []*fieldSlot{
		{name: "name", label: "Full name", input: name},
		{name: "amount", label: "Amount (float)", input: amount},
		{name: "passphrase", label: "Passphrase", input: pass},
	}

	for _, f := range a.fields {
		if err := f.input.AttachFont(fieldFont); err != nil {
			return err
		}
		f.input.SetClipboard(a.clip)
		f.input.SetSounds(a.sounds)
		f.input.SetPointerState(func() (int, int, bool) {
			x, y := ebiten.CursorPosition()
			return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		})
	}
	return nil
}

func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(a)
}

func (a *App) focusField(idx int) {
	if len(a.fields) == 0 {
		return
	}
	idx = ((idx % len(a.fields)) + len(a.fields)) % len(a.fields)
	for i, f := range a.fields {
		f.input.SetFocused(i == idx)
	}
	a.focusIdx = idx
}

func (a *App) focused() *fieldSlot {
	if a.focusIdx < 0 || a.focusIdx >= len(a.fields) {
		return nil
	}
	return a.fields[a.focusIdx]
}

// specialKeys maps ebiten key codes to the widget's key identities.
var specialKeys = map[ebiten.Key]textinput.Key{
	ebiten.KeyBackspace:    textinput.KeyBackspace,
	ebiten.KeyDelete:       textinput.KeyDelete,
	ebiten.KeyArrowLeft:    textinput.KeyLeft,
	ebiten.KeyArrowRight:   textinput.KeyRight,
	ebiten.KeyArrowUp:      textinput.KeyArrowUp,
	ebiten.KeyArrowDown:    textinput.KeyArrowDown,
	ebiten.KeyHome:         textinput.KeyHome,
	ebiten.KeyEnd:          textinput.KeyEnd,
	ebiten.KeyEnter:        textinput.KeyEnter,
	ebiten.KeyNumpadEnter:  textinput.KeyEnter,
	ebiten.KeyEscape:       textinput.KeyEscape,
	ebiten.KeyShiftLeft:    textinput.KeyShift,
	ebiten.KeyShiftRight:   textinput.KeyShift,
	ebiten.KeyControlLeft:  textinput.KeyControl,
	ebiten.KeyControlRight: textinput.KeyControl,
	ebiten.KeyCapsLock:     textinput.KeyCapsLock,
	ebiten.KeyNumLock:      textinput.KeyNumLock,
}

// comboKeys are the letters the widget interprets under ctrl.
var comboKeys = map[ebiten.Key]struct {
	key textinput.Key
	r   rune
}{
	ebiten.KeyA: {textinput.KeyA, 'a'},
	ebiten.KeyC: {textinput.KeyC, 'c'},
	ebiten.KeyV: {textinput.KeyV, 'v'},
	ebiten.KeyX: {textinput.KeyX, 'x'},
	ebiten.KeyY: {textinput.KeyY, 'y'},
	ebiten.KeyZ: {textinput.KeyZ, 'z'},
}

func (a *App) modifiers() textinput.Modifiers {
	return textinput.Modifiers{
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
	}
}

// collectEvents translates this tick's ebiten input into widget events.
func (a *App) collectEvents() []textinput.Event {
	mods := a.modifiers()
	var events []textinput.Event

	for ek, tk := range specialKeys {
		if inpututil.IsKeyJustPressed(ek) {
			events = append(events, textinput.KeyDown(tk, 0, mods))
		}
		if inpututil.IsKeyJustReleased(ek) {
			events = append(events, textinput.KeyUp(tk))
		}
	}

	for ek, combo := range comboKeys {
		if mods.Ctrl && inpututil.IsKeyJustPressed(ek) {
			events = append(events, textinput.KeyDown(combo.key, combo.r, mods))
		}
		if inpututil.IsKeyJustReleased(ek) {
			events = append(events, textinput.KeyUp(combo.key))
		}
	}

	// Ebiten separates typed characters from key codes, so pair each new
	// character with a printable key pressed this tick. The pairing feeds
	// key-up events back to the repeat timers.
	a.charBuf = ebiten.AppendInputChars(a.charBuf[:0])
	if !mods.Ctrl {
		pressed := inpututil.AppendJustPressedKeys(nil)
		pi := 0
		for _, r := range a.charBuf {
			events = append(events, textinput.KeyDown(textinput.CharKey(r), r, mods))
			matched := false
			for ; pi < len(pressed); pi++ {
				if printableKey(pressed[pi]) {
					a.charKeys[pressed[pi]] = r
					pi++
					matched = true
					break
				}
			}
			if !matched {
				// IME or synthetic character with no held key: close it
				// immediately so it never repeats.
				events = append(events, textinput.KeyUp(textinput.CharKey(r)))
			}
		}
	}
	for ek, r := range a.charKeys {
		if inpututil.IsKeyJustReleased(ek) {
			events = append(events, textinput.KeyUp(textinput.CharKey(r)))
			delete(a.charKeys, ek)
		}
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, textinput.PointerDown(mx, my, false))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, textinput.PointerUp(mx, my, false))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		events = append(events, textinput.PointerDown(tx, ty, true))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, textinput.PointerUp(tx, ty, true))
	}

	return events
}

// printableKey reports whether an ebiten key can emit an input character.
func printableKey(k ebiten.Key) bool {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return true
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return true
	case k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return true
	}
	switch k {
	case ebiten.KeySpace, ebiten.KeyMinus, ebiten.KeyEqual, ebiten.KeyBracketLeft,
		ebiten.KeyBracketRight, ebiten.KeyBackslash, ebiten.KeySemicolon,
		ebiten.KeyQuote, ebiten.KeyComma, ebiten.KeyPeriod, ebiten.KeySlash,
		ebiten.KeyBackquote, ebiten.KeyNumpadAdd, ebiten.KeyNumpadSubtract,
		ebiten.KeyNumpadMultiply, ebiten.KeyNumpadDivide, ebiten.KeyNumpadDecimal:
		return true
	}
	return false
}

func (a *App) Update() error {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, btn := range a.topActions {
			if btn.r.Contains(mx, my) {
				a.runAction(btn.id)
				return nil
			}
		}
		for i, f := range a.fields {
			if f.box.Contains(mx, my) && i != a.focusIdx {
				a.focusField(i)
				break
			}
		}
	}

	// Tab cycles field focus at the host level; the widgets never see it.
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			a.focusField(a.focusIdx - 1)
		} else {
			a.focusField(a.focusIdx + 1)
		}
		return nil
	}

	events := a.collectEvents()
	if f := a.focused(); f != nil {
		wasActive := f.input.Active()
		f.input.Update(events)
		if f.name == "passphrase" && wasActive && !f.input.Active() {
			a.applyPassphrase(f.input.Text())
		}
	}
	return nil
}

// applyPassphrase derives and publishes the key-stretching digest once the
// field commits on enter.
func (a *App) applyPassphrase(pass string) {
	if pass == "" {
		a.digest = ""
		a.statusMsg = "empty passphrase"
		return
	}
	salt := []byte("fieldbox.v1")
	key := pbkdf2.Key([]byte(pass), salt, digestIterations, 32, sha256.New)
	a.digest = hex.EncodeToString(key)
	a.statusMsg = "passphrase digest updated"
}

func (a *App) runAction(id string) {
	switch id {
	case "load":
		path, err := dialog.File().Filter("Text files", "txt").Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				a.statusMsg = fmt.Sprintf("load failed: %v", err)
			}
			return
		}
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			a.statusMsg = fmt.Sprintf("load failed: %v", err)
			return
		}
		line, _, _ := strings.Cut(string(data), "\n")
		f := a.focused()
		if f == nil {
			return
		}
		if err := f.input.SetValue(strings.TrimSpace(line)); err != nil {
			// Password and typed fields can refuse the value.
			a.statusMsg = fmt.Sprintf("load rejected: %v", err)
			return
		}
		a.statusMsg = "loaded " + path
	case "clear":
		for _, f := range a.fields {
			f.input.Clear()
		}
		a.digest = ""
		a.statusMsg = "cleared"
	case "sound":
		if a.sounds.enabled {
			a.sounds.enabled = false
		} else if a.sounds.ctx != nil {
			a.sounds.enabled = true
		} else {
			a.sounds = newBeeper(true)
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.frameBuffer == nil || a.frameBuffer.W != w || a.frameBuffer.H != h {
		a.frameBuffer = render.NewFrameBuffer(w, h)
		a.canvas = ebiten.NewImage(w, h)
	}

	a.layout = ui.DrawShell(a.frameBuffer, a.theme, 1, len(a.fields))
	widgets := make([]ui.Widget, len(a.fields))
	for i, f := range a.fields {
		if i < len(a.layout.Fields) {
			f.box = a.layout.Fields[i]
		}
		widgets[i] = f.input
	}
	ui.PlaceWidgets(a.layout, widgets)

	uiFace := a.fonts.face(11, false)
	a.layoutTopActions(uiFace)
	a.drawFieldChrome()

	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	a.drawText(screen)
}

const fieldPadX = 8

func (a *App) drawFieldChrome() {
	for i, f := range a.fields {
		focused := i == a.focusIdx
		ui.DrawFieldBox(a.frameBuffer, a.theme, f.box, focused)

		ti := f.input
		if x, sw := ti.SelectionPixelSpan(); sw > 0 {
			ui.DrawSelection(a.frameBuffer, a.theme, f.box, x, sw, fieldPadX)
		}
		if ti.CursorVisible() {
			ui.DrawCursor(a.frameBuffer, a.theme, f.box, ti.CursorPixelX(), fieldPadX)
		}
	}
}

func (a *App) layoutTopActions(face font.Face) {
	a.topActions = a.topActions[:0]
	x := 10
	y := 4
	h := a.layout.TopBarH - 8
	if h < 24 {
		h = 24
	}
	buttons := []actionButton{
		{id: "load", label: "Load"},
		{id: "clear", label: "Clear"},
		{id: "sound", label: "Sound", active: a.sounds.enabled},
	}
	mx, my := ebiten.CursorPosition()
	for _, btn := range buttons {
		tw := measureString(face, btn.label)
		pad := 14
		bw := tw + pad*2
		if bw < 64 {
			bw = 64
		}
		r := ui.Rect{X: x, Y: y, W: bw, H: h}
		hover := r.Contains(mx, my)
		bg := color.RGBA{R: 46, G: 84, B: 145, A: 255}
		if btn.active {
			bg = color.RGBA{R: 71, G: 116, B: 186, A: 255}
		}
		if hover {
			bg = color.RGBA{R: 58, G: 102, B: 172, A: 255}
		}
		a.frameBuffer.FillRect(r.X, r.Y, r.W, r.H, bg)
		a.frameBuffer.StrokeRect(r.X, r.Y, r.W, r.H, 1, color.RGBA{R: 27, G: 54, B: 97, A: 255})
		btn.r = r
		a.topActions = append(a.topActions, btn)
		x += bw + 8
	}
}

// drawText renders everything the framebuffer cannot: labels, field
// content, button captions and the status line.
func (a *App) drawText(screen *ebiten.Image) {
	labelFace := a.fonts.face(12, true)
	fieldFace := a.fonts.face(15, false)
	uiFace := a.fonts.face(11, false)

	for _, btn := range a.topActions {
		tx := btn.r.X + (btn.r.W-measureString(uiFace, btn.label))/2
		ty := btn.r.Y + btn.r.H/2 + 4
		text.Draw(screen, btn.label, uiFace, tx, ty, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	}

	for i, f := range a.fields {
		if f.box.Empty() {
			continue
		}
		text.Draw(screen, f.label, labelFace, f.box.X, f.box.Y-6, a.theme.TitleText)

		ti := f.input
		line := ti.Title() + ti.VisibleText()
		baseline := f.box.Y + f.box.H/2 + 5
		text.Draw(screen, line, fieldFace, f.box.X+fieldPadX, baseline, a.theme.ValueText)

		if underline, err := ti.UnderlineString(f.box.W - fieldPadX*2); err == nil && underline != "" {
			uy := f.box.Y + f.box.H - 4 + ti.UnderlineVMargin()
			text.Draw(screen, underline, fieldFace, f.box.X+fieldPadX, uy, a.theme.HintText)
		}

		if i == a.focusIdx && ti.Active() {
			text.Draw(screen, "editing", uiFace, f.box.X+f.box.W-measureString(uiFace, "editing")-4, f.box.Y-6, a.theme.HintText)
		}
	}

	status := a.statusLine()
	text.Draw(screen, status, uiFace, 10, a.layout.StatusBar+a.layout.StatusH/2+4, a.theme.TitleText)
}

func (a *App) statusLine() string {
	f := a.focused()
	if f == nil {
		return ""
	}
	left, right, _ := f.input.Renderbox()
	status := fmt.Sprintf("[ %s ] cursor %d/%d | view %d-%d",
		f.name, f.input.Cursor(), len([]rune(f.input.Text())), left, right)
	if a.digest != "" {
		status += " | digest " + a.digest[:16] + "..."
	}
	if a.statusMsg != "" {
		status += " | " + a.statusMsg
	}
	return status
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 480 {
		outsideWidth = 480
	}
	if outsideHeight < 320 {
		outsideHeight = 320
	}
	return outsideWidth, outsideHeight
}
