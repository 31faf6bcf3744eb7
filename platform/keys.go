package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// keyNames gives every GLFW key the name used in "key_<NAME>" events.
var keyNames = map[glfw.Key]string{
	glfw.KeyUnknown:      "UNKNOWN",
	glfw.KeySpace:        "SPACE",
	glfw.KeyApostrophe:   "APOSTROPHE",
	glfw.KeyComma:        "COMMA",
	glfw.KeyMinus:        "MINUS",
	glfw.KeyPeriod:       "PERIOD",
	glfw.KeySlash:        "SLASH",
	glfw.Key0:            "K0",
	glfw.Key1:            "K1",
	glfw.Key2:            "K2",
	glfw.Key3:            "K3",
	glfw.Key4:            "K4",
	glfw.Key5:            "K5",
	glfw.Key6:            "K6",
	glfw.Key7:            "K7",
	glfw.Key8:            "K8",
	glfw.Key9:            "K9",
	glfw.KeySemicolon:    "SEMICOLON",
	glfw.KeyEqual:        "EQUAL",
	glfw.KeyA:            "A",
	glfw.KeyB:            "B",
	glfw.KeyC:            "C",
	glfw.KeyD:            "D",
	glfw.KeyE:            "E",
	glfw.KeyF:            "F",
	glfw.KeyG:            "G",
	glfw.KeyH:            "H",
	glfw.KeyI:            "I",
	glfw.KeyJ:            "J",
	glfw.KeyK:            "K",
	glfw.KeyL:            "L",
	glfw.KeyM:            "M",
	glfw.KeyN:            "N",
	glfw.KeyO:            "O",
	glfw.KeyP:            "P",
	glfw.KeyQ:            "Q",
	glfw.KeyR:            "R",
	glfw.KeyS:            "S",
	glfw.KeyT:            "T",
	glfw.KeyU:            "U",
	glfw.KeyV:            "V",
	glfw.KeyW:            "W",
	glfw.KeyX:            "X",
	glfw.KeyY:            "Y",
	glfw.KeyZ:            "Z",
	glfw.KeyLeftBracket:  "LEFT_BRACKET",
	glfw.KeyBackslash:    "BACKSLASH",
	glfw.KeyRightBracket: "RIGHT_BRACKET",
	glfw.KeyGraveAccent:  "GRAVE_ACCENT",
	glfw.KeyWorld1:       "WORLD_1",
	glfw.KeyWorld2:       "WORLD_2",
	glfw.KeyEscape:       "ESCAPE",
	glfw.KeyEnter:        "ENTER",
	glfw.KeyTab:          "TAB",
	glfw.KeyBackspace:    "BACKSPACE",
	glfw.KeyInsert:       "INSERT",
	glfw.KeyDelete:       "DELETE",
	glfw.KeyRight:        "RIGHT",
	glfw.KeyLeft:         "LEFT",
	glfw.KeyDown:         "DOWN",
	glfw.KeyUp:           "UP",
	glfw.KeyPageUp:       "PAGE_UP",
	glfw.KeyPageDown:     "PAGE_DOWN",
	glfw.KeyHome:         "HOME",
	glfw.KeyEnd:          "END",
	glfw.KeyCapsLock:     "CAPS_LOCK",
	glfw.KeyScrollLock:   "SCROLL_LOCK",
	glfw.KeyNumLock:      "NUM_LOCK",
	glfw.KeyPrintScreen:  "PRINT_SCREEN",
	glfw.KeyPause:        "PAUSE",
	glfw.KeyF1:           "F1",
	glfw.KeyF2:           "F2",
	glfw.KeyF3:           "F3",
	glfw.KeyF4:           "F4",
	glfw.KeyF5:           "F5",
	glfw.KeyF6:           "F6",
	glfw.KeyF7:           "F7",
	glfw.KeyF8:           "F8",
	glfw.KeyF9:           "F9",
	glfw.KeyF10:          "F10",
	glfw.KeyF11:          "F11",
	glfw.KeyF12:          "F12",
	glfw.KeyKP0:          "KP_0",
	glfw.KeyKP1:          "KP_1",
	glfw.KeyKP2:          "KP_2",
	glfw.KeyKP3:          "KP_3",
	glfw.KeyKP4:          "KP_4",
	glfw.KeyKP5:          "KP_5",
	glfw.KeyKP6:          "KP_6",
	glfw.KeyKP7:          "KP_7",
	glfw.KeyKP8:          "KP_8",
	glfw.KeyKP9:          "KP_9",
	glfw.KeyKPDecimal:    "KP_DECIMAL",
	glfw.KeyKPDivide:     "KP_DIVIDE",
	glfw.KeyKPMultiply:   "KP_MULTIPLY",
	glfw.KeyKPSubtract:   "KP_SUBTRACT",
	glfw.KeyKPAdd:        "KP_ADD",
	glfw.KeyKPEnter:      "KP_ENTER",
	glfw.KeyKPEqual:      "KP_EQUAL",
	glfw.KeyLeftShift:    "LEFT_SHIFT",
	glfw.KeyLeftControl:  "LEFT_CONTROL",
	glfw.KeyLeftAlt:      "LEFT_ALT",
	glfw.KeyLeftSuper:    "LEFT_SUPER",
	glfw.KeyRightShift:   "RIGHT_SHIFT",
	glfw.KeyRightControl: "RIGHT_CONTROL",
	glfw.KeyRightAlt:     "RIGHT_ALT",
	glfw.KeyRightSuper:   "RIGHT_SUPER",
	glfw.KeyMenu:         "MENU",
}

var buttonNames = map[glfw.MouseButton]string{
	glfw.MouseButtonLeft:   "LEFT",
	glfw.MouseButtonRight:  "RIGHT",
	glfw.MouseButtonMiddle: "MIDDLE",
}

// KeyName returns the event name component for key, e.g. "ESCAPE".
func KeyName(key glfw.Key) (string, bool) {
	name, ok := keyNames[key]
	return name, ok
}

// KeyByName is the reverse of KeyName.
func KeyByName(name string) (glfw.Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return glfw.KeyUnknown, false
}

func ButtonName(button glfw.MouseButton) (string, bool) {
	name, ok := buttonNames[button]
	return name, ok
}
