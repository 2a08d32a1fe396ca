package input

import (
	"fmt"
	"strings"
)

// Keyspec is a textual chord specification, e.g. "ControlLeft+KeyS" or the
// canonical form "m:Left|b:KeyW|".
type Keyspec string

var (
	keyCodesByName     = make(map[string]KeyCode)
	mouseButtonsByName = make(map[string]MouseButton)
)

func init() {
	for _, code := range KeyCodes() {
		keyCodesByName[strings.ToLower(code.String())] = code
	}
	for _, button := range MouseButtons() {
		mouseButtonsByName[strings.ToLower(button.String())] = button
	}
}

// ParseChord converts a chord specification to its keys, in the order they
// appear in the specification.
//
// Keys are separated by '+' or '|'; empty elements are skipped so that
// canonical forms (which end in '|') parse back to their keys. Each element is
// parsed by ParseKey.
func ParseChord(spec Keyspec) ([]Key, error) {
	fields := strings.FieldsFunc(string(spec), func(r rune) bool {
		return r == '+' || r == '|'
	})

	keys := make([]Key, 0, len(fields))
	for pos, field := range fields {
		key, err := ParseKey(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("error parsing key %d of '%s': %w", pos, spec, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ParseKey converts a single key identifier to its Key.
//
// Identifiers are matched case-insensitively and may carry a device tag, i.E.
// "b:KeyW" or "m:Left". Without a tag, keyboard names are tried before mouse
// names (there is no overlap between the two).
func ParseKey(identifier string) (Key, error) {
	device, name, tagged := strings.Cut(identifier, ":")
	if !tagged {
		name = device
		device = ""
	}
	name = strings.ToLower(name)
	if name == "" {
		return Key{}, fmt.Errorf("empty key identifier '%s'", identifier)
	}

	switch strings.ToLower(device) {
	case "":
		if code, ok := keyCodesByName[name]; ok {
			return Board(code), nil
		}
		if button, ok := mouseButtonsByName[name]; ok {
			return Mouse(button), nil
		}
	case DeviceKeyboard.String():
		if code, ok := keyCodesByName[name]; ok {
			return Board(code), nil
		}
	case DeviceMouse.String():
		if button, ok := mouseButtonsByName[name]; ok {
			return Mouse(button), nil
		}
	default:
		return Key{}, fmt.Errorf("unknown device tag '%s' in '%s'", device, identifier)
	}

	return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
}
