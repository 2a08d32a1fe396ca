package input

import "fmt"

// KeyCode identifies a physical keyboard key.
// Codes are enumerated in a fixed order, which is the order used when sorting
// keyboard keys.
type KeyCode uint16

// Keyboard key codes, named after their W3C "code" counterparts.
const (
	KeyCodeBackquote KeyCode = iota
	KeyCodeBackslash
	KeyCodeBracketLeft
	KeyCodeBracketRight
	KeyCodeComma
	KeyCodeDigit0
	KeyCodeDigit1
	KeyCodeDigit2
	KeyCodeDigit3
	KeyCodeDigit4
	KeyCodeDigit5
	KeyCodeDigit6
	KeyCodeDigit7
	KeyCodeDigit8
	KeyCodeDigit9
	KeyCodeEqual
	KeyCodeA
	KeyCodeB
	KeyCodeC
	KeyCodeD
	KeyCodeE
	KeyCodeF
	KeyCodeG
	KeyCodeH
	KeyCodeI
	KeyCodeJ
	KeyCodeK
	KeyCodeL
	KeyCodeM
	KeyCodeN
	KeyCodeO
	KeyCodeP
	KeyCodeQ
	KeyCodeR
	KeyCodeS
	KeyCodeT
	KeyCodeU
	KeyCodeV
	KeyCodeW
	KeyCodeX
	KeyCodeY
	KeyCodeZ
	KeyCodeMinus
	KeyCodePeriod
	KeyCodeQuote
	KeyCodeSemicolon
	KeyCodeSlash
	KeyCodeAltLeft
	KeyCodeAltRight
	KeyCodeBackspace
	KeyCodeCapsLock
	KeyCodeControlLeft
	KeyCodeControlRight
	KeyCodeEnter
	KeyCodeSuperLeft
	KeyCodeSuperRight
	KeyCodeShiftLeft
	KeyCodeShiftRight
	KeyCodeSpace
	KeyCodeTab
	KeyCodeDelete
	KeyCodeEnd
	KeyCodeHome
	KeyCodeInsert
	KeyCodePageDown
	KeyCodePageUp
	KeyCodeArrowDown
	KeyCodeArrowLeft
	KeyCodeArrowRight
	KeyCodeArrowUp
	KeyCodeEscape
	KeyCodeF1
	KeyCodeF2
	KeyCodeF3
	KeyCodeF4
	KeyCodeF5
	KeyCodeF6
	KeyCodeF7
	KeyCodeF8
	KeyCodeF9
	KeyCodeF10
	KeyCodeF11
	KeyCodeF12

	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	KeyCodeBackquote:    "Backquote",
	KeyCodeBackslash:    "Backslash",
	KeyCodeBracketLeft:  "BracketLeft",
	KeyCodeBracketRight: "BracketRight",
	KeyCodeComma:        "Comma",
	KeyCodeDigit0:       "Digit0",
	KeyCodeDigit1:       "Digit1",
	KeyCodeDigit2:       "Digit2",
	KeyCodeDigit3:       "Digit3",
	KeyCodeDigit4:       "Digit4",
	KeyCodeDigit5:       "Digit5",
	KeyCodeDigit6:       "Digit6",
	KeyCodeDigit7:       "Digit7",
	KeyCodeDigit8:       "Digit8",
	KeyCodeDigit9:       "Digit9",
	KeyCodeEqual:        "Equal",
	KeyCodeA:            "KeyA",
	KeyCodeB:            "KeyB",
	KeyCodeC:            "KeyC",
	KeyCodeD:            "KeyD",
	KeyCodeE:            "KeyE",
	KeyCodeF:            "KeyF",
	KeyCodeG:            "KeyG",
	KeyCodeH:            "KeyH",
	KeyCodeI:            "KeyI",
	KeyCodeJ:            "KeyJ",
	KeyCodeK:            "KeyK",
	KeyCodeL:            "KeyL",
	KeyCodeM:            "KeyM",
	KeyCodeN:            "KeyN",
	KeyCodeO:            "KeyO",
	KeyCodeP:            "KeyP",
	KeyCodeQ:            "KeyQ",
	KeyCodeR:            "KeyR",
	KeyCodeS:            "KeyS",
	KeyCodeT:            "KeyT",
	KeyCodeU:            "KeyU",
	KeyCodeV:            "KeyV",
	KeyCodeW:            "KeyW",
	KeyCodeX:            "KeyX",
	KeyCodeY:            "KeyY",
	KeyCodeZ:            "KeyZ",
	KeyCodeMinus:        "Minus",
	KeyCodePeriod:       "Period",
	KeyCodeQuote:        "Quote",
	KeyCodeSemicolon:    "Semicolon",
	KeyCodeSlash:        "Slash",
	KeyCodeAltLeft:      "AltLeft",
	KeyCodeAltRight:     "AltRight",
	KeyCodeBackspace:    "Backspace",
	KeyCodeCapsLock:     "CapsLock",
	KeyCodeControlLeft:  "ControlLeft",
	KeyCodeControlRight: "ControlRight",
	KeyCodeEnter:        "Enter",
	KeyCodeSuperLeft:    "SuperLeft",
	KeyCodeSuperRight:   "SuperRight",
	KeyCodeShiftLeft:    "ShiftLeft",
	KeyCodeShiftRight:   "ShiftRight",
	KeyCodeSpace:        "Space",
	KeyCodeTab:          "Tab",
	KeyCodeDelete:       "Delete",
	KeyCodeEnd:          "End",
	KeyCodeHome:         "Home",
	KeyCodeInsert:       "Insert",
	KeyCodePageDown:     "PageDown",
	KeyCodePageUp:       "PageUp",
	KeyCodeArrowDown:    "ArrowDown",
	KeyCodeArrowLeft:    "ArrowLeft",
	KeyCodeArrowRight:   "ArrowRight",
	KeyCodeArrowUp:      "ArrowUp",
	KeyCodeEscape:       "Escape",
	KeyCodeF1:           "F1",
	KeyCodeF2:           "F2",
	KeyCodeF3:           "F3",
	KeyCodeF4:           "F4",
	KeyCodeF5:           "F5",
	KeyCodeF6:           "F6",
	KeyCodeF7:           "F7",
	KeyCodeF8:           "F8",
	KeyCodeF9:           "F9",
	KeyCodeF10:          "F10",
	KeyCodeF11:          "F11",
	KeyCodeF12:          "F12",
}

// String returns the name of the key code, e.g. "KeyW" or "ShiftLeft".
func (c KeyCode) String() string {
	if c >= keyCodeCount {
		return fmt.Sprintf("KeyCode(%d)", uint16(c))
	}
	return keyCodeNames[c]
}

// KeyCodes returns all known key codes in enumeration order.
func KeyCodes() []KeyCode {
	codes := make([]KeyCode, keyCodeCount)
	for i := range codes {
		codes[i] = KeyCode(i)
	}
	return codes
}

// MouseButton identifies a mouse button.
type MouseButton uint16

// Mouse buttons.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward

	mouseButtonCount
)

var mouseButtonNames = [mouseButtonCount]string{
	MouseButtonLeft:    "Left",
	MouseButtonRight:   "Right",
	MouseButtonMiddle:  "Middle",
	MouseButtonBack:    "Back",
	MouseButtonForward: "Forward",
}

// String returns the name of the mouse button, e.g. "Left".
func (b MouseButton) String() string {
	if b >= mouseButtonCount {
		return fmt.Sprintf("MouseButton(%d)", uint16(b))
	}
	return mouseButtonNames[b]
}

// MouseButtons returns all known mouse buttons in enumeration order.
func MouseButtons() []MouseButton {
	buttons := make([]MouseButton, mouseButtonCount)
	for i := range buttons {
		buttons[i] = MouseButton(i)
	}
	return buttons
}
