package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/chordbind/internal/input"
)

// unshifted punctuation (US layout)
var punctuation = map[rune]input.KeyCode{
	'`':  input.KeyCodeBackquote,
	'\\': input.KeyCodeBackslash,
	'[':  input.KeyCodeBracketLeft,
	']':  input.KeyCodeBracketRight,
	',':  input.KeyCodeComma,
	'=':  input.KeyCodeEqual,
	'-':  input.KeyCodeMinus,
	'.':  input.KeyCodePeriod,
	'\'': input.KeyCodeQuote,
	';':  input.KeyCodeSemicolon,
	'/':  input.KeyCodeSlash,
	' ':  input.KeyCodeSpace,
}

// shifted punctuation (US layout)
var shiftedPunctuation = map[rune]input.KeyCode{
	'~': input.KeyCodeBackquote,
	'|': input.KeyCodeBackslash,
	'{': input.KeyCodeBracketLeft,
	'}': input.KeyCodeBracketRight,
	'<': input.KeyCodeComma,
	'+': input.KeyCodeEqual,
	'_': input.KeyCodeMinus,
	'>': input.KeyCodePeriod,
	'"': input.KeyCodeQuote,
	':': input.KeyCodeSemicolon,
	'?': input.KeyCodeSlash,
	')': input.KeyCodeDigit0,
	'!': input.KeyCodeDigit1,
	'@': input.KeyCodeDigit2,
	'#': input.KeyCodeDigit3,
	'$': input.KeyCodeDigit4,
	'%': input.KeyCodeDigit5,
	'^': input.KeyCodeDigit6,
	'&': input.KeyCodeDigit7,
	'*': input.KeyCodeDigit8,
	'(': input.KeyCodeDigit9,
}

var specialKeys = map[tcell.Key]input.KeyCode{
	tcell.KeyEnter:      input.KeyCodeEnter,
	tcell.KeyTab:        input.KeyCodeTab,
	tcell.KeyBacktab:    input.KeyCodeTab,
	tcell.KeyBackspace:  input.KeyCodeBackspace,
	tcell.KeyBackspace2: input.KeyCodeBackspace,
	tcell.KeyEscape:     input.KeyCodeEscape,
	tcell.KeyDelete:     input.KeyCodeDelete,
	tcell.KeyInsert:     input.KeyCodeInsert,
	tcell.KeyHome:       input.KeyCodeHome,
	tcell.KeyEnd:        input.KeyCodeEnd,
	tcell.KeyPgUp:       input.KeyCodePageUp,
	tcell.KeyPgDn:       input.KeyCodePageDown,
	tcell.KeyUp:         input.KeyCodeArrowUp,
	tcell.KeyDown:       input.KeyCodeArrowDown,
	tcell.KeyLeft:       input.KeyCodeArrowLeft,
	tcell.KeyRight:      input.KeyCodeArrowRight,
	tcell.KeyCtrlSpace:  input.KeyCodeSpace,
	tcell.KeyF1:         input.KeyCodeF1,
	tcell.KeyF2:         input.KeyCodeF2,
	tcell.KeyF3:         input.KeyCodeF3,
	tcell.KeyF4:         input.KeyCodeF4,
	tcell.KeyF5:         input.KeyCodeF5,
	tcell.KeyF6:         input.KeyCodeF6,
	tcell.KeyF7:         input.KeyCodeF7,
	tcell.KeyF8:         input.KeyCodeF8,
	tcell.KeyF9:         input.KeyCodeF9,
	tcell.KeyF10:        input.KeyCodeF10,
	tcell.KeyF11:        input.KeyCodeF11,
	tcell.KeyF12:        input.KeyCodeF12,
}

// KeyCodesFromEvent translates a terminal key event to the keyboard keys it
// implies, including modifiers (as their left-hand keys).
// Returns nil for events without a known mapping.
func KeyCodesFromEvent(e *tcell.EventKey) []input.KeyCode {
	codes := make([]input.KeyCode, 0, 2)

	mods := e.Modifiers()
	addModifiers := func() {
		if mods&tcell.ModShift != 0 {
			codes = append(codes, input.KeyCodeShiftLeft)
		}
		if mods&tcell.ModCtrl != 0 {
			codes = append(codes, input.KeyCodeControlLeft)
		}
		if mods&tcell.ModAlt != 0 {
			codes = append(codes, input.KeyCodeAltLeft)
		}
		if mods&tcell.ModMeta != 0 {
			codes = append(codes, input.KeyCodeSuperLeft)
		}
	}

	k := e.Key()
	if k == tcell.KeyRune {
		code, shifted, ok := keyCodeFromRune(e.Rune())
		if !ok {
			return nil
		}
		addModifiers()
		if shifted && mods&tcell.ModShift == 0 {
			codes = append(codes, input.KeyCodeShiftLeft)
		}
		return append(codes, code)
	}

	if code, ok := specialKeys[k]; ok {
		addModifiers()
		if k == tcell.KeyBacktab && mods&tcell.ModShift == 0 {
			codes = append(codes, input.KeyCodeShiftLeft)
		}
		if k == tcell.KeyCtrlSpace && mods&tcell.ModCtrl == 0 {
			codes = append(codes, input.KeyCodeControlLeft)
		}
		return append(codes, code)
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		addModifiers()
		if mods&tcell.ModCtrl == 0 {
			codes = append(codes, input.KeyCodeControlLeft)
		}
		return append(codes, input.KeyCodeA+input.KeyCode(k-tcell.KeyCtrlA))
	}

	return nil
}

// keyCodeFromRune returns the key code producing the given rune and whether
// shift is needed to produce it.
func keyCodeFromRune(r rune) (code input.KeyCode, shifted bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyCodeA + input.KeyCode(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return input.KeyCodeA + input.KeyCode(r-'A'), true, true
	case r >= '0' && r <= '9':
		return input.KeyCodeDigit0 + input.KeyCode(r-'0'), false, true
	}
	if code, ok := punctuation[r]; ok {
		return code, false, true
	}
	if code, ok := shiftedPunctuation[r]; ok {
		return code, true, true
	}
	return 0, false, false
}

var mouseButtonMasks = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseButtonLeft},
	{tcell.Button2, input.MouseButtonRight},
	{tcell.Button3, input.MouseButtonMiddle},
	{tcell.Button4, input.MouseButtonBack},
	{tcell.Button5, input.MouseButtonForward},
}

// MouseButtonsFromMask returns the mouse buttons held according to the given
// terminal button mask. Wheel events are ignored.
func MouseButtonsFromMask(mask tcell.ButtonMask) []input.MouseButton {
	buttons := make([]input.MouseButton, 0, len(mouseButtonMasks))
	for _, m := range mouseButtonMasks {
		if mask&m.mask != 0 {
			buttons = append(buttons, m.button)
		}
	}
	return buttons
}
