package input

import (
	"fmt"
	"sort"
)

// Device identifies the input device a Key belongs to.
type Device int

const (
	// DeviceMouse is the mouse device, i.E. its buttons.
	DeviceMouse Device = iota
	// DeviceKeyboard is the keyboard device.
	DeviceKeyboard
)

// String returns the device tag as used in canonical binding forms.
func (d Device) String() string {
	switch d {
	case DeviceMouse:
		return "m"
	case DeviceKeyboard:
		return "b"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// Key is a single input key on either the keyboard or the mouse.
//
// A Key is a plain comparable value and can be used as a map key. Two keys
// are equal iff they are on the same device and have the same code.
type Key struct {
	device Device
	code   uint16
}

// Board returns the Key for the given keyboard code.
func Board(code KeyCode) Key {
	return Key{device: DeviceKeyboard, code: uint16(code)}
}

// Mouse returns the Key for the given mouse button.
func Mouse(button MouseButton) Key {
	return Key{device: DeviceMouse, code: uint16(button)}
}

// Device returns the device this key belongs to.
func (k Key) Device() Device { return k.device }

// IsMouse returns whether this is a mouse button key.
func (k Key) IsMouse() bool { return k.device == DeviceMouse }

// KeyCode returns the keyboard code of this key.
// The second return value is false if the key is not a keyboard key.
func (k Key) KeyCode() (KeyCode, bool) {
	if k.device != DeviceKeyboard {
		return 0, false
	}
	return KeyCode(k.code), true
}

// MouseButton returns the mouse button of this key.
// The second return value is false if the key is not a mouse key.
func (k Key) MouseButton() (MouseButton, bool) {
	if k.device != DeviceMouse {
		return 0, false
	}
	return MouseButton(k.code), true
}

// String returns the token for this key in the form "<device>:<name>", e.g.
// "b:KeyW" or "m:Left".
func (k Key) String() string {
	switch k.device {
	case DeviceKeyboard:
		return "b:" + KeyCode(k.code).String()
	case DeviceMouse:
		return "m:" + MouseButton(k.code).String()
	default:
		return fmt.Sprintf("%s:%d", k.device, k.code)
	}
}

// Compare establishes the canonical total order of keys.
// It returns -1 if a sorts before b, +1 if b sorts before a and 0 if they are
// equal.
//
// All mouse keys sort before all keyboard keys. Within a device, keys are
// ordered by the enumeration index of their button or key code.
// The order carries no meaning regarding input priority.
func Compare(a, b Key) int {
	switch {
	case a.device < b.device:
		return -1
	case a.device > b.device:
		return 1
	case a.code < b.code:
		return -1
	case a.code > b.code:
		return 1
	default:
		return 0
	}
}

// SortKeys sorts the given keys in place into their canonical order.
func SortKeys(keys []Key) {
	sort.SliceStable(keys, func(i, j int) bool { return Compare(keys[i], keys[j]) < 0 })
}
