// Package input turns a raw terminal byte stream into held-key state and
// discrete key events.
package input

import (
	"bufio"
	"bytes"
	"time"
	"unicode/utf8"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so holding is inferred from recent presses.
const keyHoldDuration = 60 * time.Millisecond

// Key identifies a discrete key press.
type Key int

const (
	KeyRune Key = iota // Printable character, see Event.Rune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDelete
)

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune // Set for KeyRune
}

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Up     bool // Held
	Down   bool // Held
	Events []Event
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up   time.Time
	down time.Time
}

// Stream delivers input bytes via a channel and tracks key state across frames.
type Stream struct {
	ch      chan byte
	closed  bool
	state   keyState
	pending []byte // Incomplete key sequence carried into the next frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (EOF on disconnect).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit.
func (s *Stream) ReadInput() Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	inp := s.feed(buf, time.Now())
	if s.closed {
		inp.Quit = true
	}
	return inp
}

// ResetHeld forgets held keys, so presses from a previous screen do not
// carry into the next one.
func (s *Stream) ResetHeld() {
	s.state = keyState{}
}

// feed parses buf, updates held-key timestamps and builds the frame's input.
// A key sequence cut off at the end of buf waits for the next frame. When a
// frame brings no new bytes the held-back bytes are parsed as they are, so a
// lone ESC becomes KeyEscape one frame late.
func (s *Stream) feed(buf []byte, now time.Time) Input {
	data := append(s.pending, buf...)
	s.pending = nil
	if len(buf) > 0 && !s.closed {
		var tail []byte
		data, tail = splitIncomplete(data)
		s.pending = bytes.Clone(tail)
	}

	events, quit := Parse(data)
	for _, ev := range events {
		switch {
		case ev.Key == KeyUp, ev.Key == KeyRune && (ev.Rune == 'w' || ev.Rune == 'W'):
			s.state.up = now
		case ev.Key == KeyDown, ev.Key == KeyRune && (ev.Rune == 's' || ev.Rune == 'S'):
			s.state.down = now
		}
	}

	return Input{
		Quit:   quit,
		Up:     !s.state.up.IsZero() && now.Sub(s.state.up) < keyHoldDuration,
		Down:   !s.state.down.IsZero() && now.Sub(s.state.down) < keyHoldDuration,
		Events: events,
	}
}

// splitIncomplete separates a trailing partial escape sequence or UTF-8
// rune from the complete bytes before it.
func splitIncomplete(buf []byte) (complete, tail []byte) {
	if i := bytes.LastIndexByte(buf, '\x1b'); i >= 0 && incompleteEscape(buf[i:]) {
		return buf[:i], buf[i:]
	}
	for j := len(buf) - 1; j >= 0 && j >= len(buf)-utf8.UTFMax; j-- {
		if utf8.RuneStart(buf[j]) {
			if !utf8.FullRune(buf[j:]) {
				return buf[:j], buf[j:]
			}
			break
		}
	}
	return buf, nil
}

// incompleteEscape reports whether seq, starting with ESC, is a prefix of a
// CSI or SS3 sequence still missing its final byte.
func incompleteEscape(seq []byte) bool {
	switch {
	case len(seq) == 1:
		return true
	case seq[1] == 'O':
		return len(seq) == 2
	case seq[1] != '[':
		return false
	}
	for _, b := range seq[2:] {
		if b < 0x30 || b > 0x3f {
			return false
		}
	}
	return true
}

// Parse converts raw terminal bytes into key events. Ctrl+C and Ctrl+D
// report quit instead of an event.
func Parse(buf []byte) (events []Event, quit bool) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI / SS3 sequences: ESC [ <code> or ESC O <code>
		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			var key Key
			switch buf[i+2] {
			case 'A':
				key = KeyUp
			case 'B':
				key = KeyDown
			case 'C':
				key = KeyRight
			case 'D':
				key = KeyLeft
			default:
				// Skip parameter bytes up to the final byte. ESC [ 3 ~ is Delete.
				j := i + 2
				for j < len(buf) && buf[j] >= 0x30 && buf[j] <= 0x3f {
					j++
				}
				if j < len(buf) && buf[j] == '~' && string(buf[i+2:j]) == "3" {
					events = append(events, Event{Key: KeyDelete})
				}
				i = j
				continue
			}
			events = append(events, Event{Key: key})
			i += 2
			continue
		}

		switch {
		case b == 0x03 || b == 0x04:
			quit = true
		case b == '\x1b':
			events = append(events, Event{Key: KeyEscape})
		case b == '\r':
			events = append(events, Event{Key: KeyEnter})
			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
		case b == '\n':
			events = append(events, Event{Key: KeyEnter})
		case b == '\b' || b == 0x7f:
			events = append(events, Event{Key: KeyBackspace})
		case b < 0x20:
			// Other control characters are ignored
		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError {
				events = append(events, Event{Key: KeyRune, Rune: r})
			}
			i += size - 1
		}
	}
	return events, quit
}
