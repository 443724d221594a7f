// Package input turns a raw terminal byte stream into per-frame key events and
// held-key state.
package input

import (
	"bufio"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last byte arrived. Terminals never report key release; this bridges the gap
// between autorepeat bytes.
const keyHoldDuration = 120 * time.Millisecond

// Key identifies a decoded key press.
type Key int

const (
	KeyRune      Key = iota // Printable character, see Event.Rune
	KeyUp                   // Arrow up
	KeyDown                 // Arrow down
	KeyLeft                 // Arrow left
	KeyRight                // Arrow right
	KeyEnter                // Enter / Return
	KeyEscape               // Lone ESC
	KeyBackspace            // Backspace or DEL
	KeyInterrupt            // Ctrl-C
)

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune // Set for KeyRune
}

// Input represents the current frame's input state.
type Input struct {
	Events []Event // Presses decoded this frame, in arrival order

	// Held movement keys
	P1Up   bool // W
	P1Down bool // S
	P2Up   bool // Arrow up
	P2Down bool // Arrow down

	Interrupt bool // Ctrl-C seen this frame
	Closed    bool // Input stream ended (EOF or disconnect)
}

// Has reports whether a key of the given kind was pressed this frame.
func (in Input) Has(k Key) bool {
	for _, e := range in.Events {
		if e.Key == k {
			return true
		}
	}
	return false
}

// Pressed reports whether the rune was typed this frame, ignoring case.
func (in Input) Pressed(r rune) bool {
	r = unicode.ToLower(r)
	for _, e := range in.Events {
		if e.Key == KeyRune && unicode.ToLower(e.Rune) == r {
			return true
		}
	}
	return false
}

// Any reports whether any key was pressed this frame.
func (in Input) Any() bool {
	return len(in.Events) > 0
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	p1Up   time.Time
	p1Down time.Time
	p2Up   time.Time
	p2Down time.Time
}

// Stream delivers input bytes via a channel and tracks held keys.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 256)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine ends when r returns an error.
func StartStream(r io.Reader) *Stream {
	s := newStream()
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes (non-blocking) and returns this frame's input.
func (s *Stream) Read() Input {
	return s.ReadAt(time.Now())
}

// ReadAt is Read with an explicit clock.
func (s *Stream) ReadAt(now time.Time) Input {
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

	events := Parse(buf)
	for _, e := range events {
		s.applyEvent(e, now)
	}

	in := Input{
		Events: events,
		P1Up:   now.Sub(s.state.p1Up) < keyHoldDuration,
		P1Down: now.Sub(s.state.p1Down) < keyHoldDuration,
		P2Up:   now.Sub(s.state.p2Up) < keyHoldDuration,
		P2Down: now.Sub(s.state.p2Down) < keyHoldDuration,
		Closed: s.closed,
	}
	in.Interrupt = in.Has(KeyInterrupt)
	return in
}

// Reset forgets all held keys, e.g. when switching screens.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// applyEvent updates held-key timestamps. Pressing one direction releases the
// opposite one immediately so reversals are not delayed by the hold window.
func (s *Stream) applyEvent(e Event, now time.Time) {
	switch e.Key {
	case KeyUp:
		s.state.p2Up = now
		s.state.p2Down = time.Time{}
	case KeyDown:
		s.state.p2Down = now
		s.state.p2Up = time.Time{}
	case KeyRune:
		switch unicode.ToLower(e.Rune) {
		case 'w':
			s.state.p1Up = now
			s.state.p1Down = time.Time{}
		case 's':
			s.state.p1Down = now
			s.state.p1Up = time.Time{}
		}
	}
}

// Parse decodes raw terminal bytes into key events. Handles CSI and SS3
// sequences, CR/LF pairs, DEL/backspace and UTF-8 text. Sequences other than
// arrows and Delete, and unknown control bytes, are dropped.
func Parse(buf []byte) []Event {
	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// ESC [ ... (CSI) or ESC O X (SS3, application cursor mode)
			if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				e, n, ok := parseSequence(buf[i+1:])
				if ok {
					events = append(events, e)
				}
				i += n
				continue
			}
			events = append(events, Event{Key: KeyEscape})
			continue
		}

		switch b {
		case '\r':
			events = append(events, Event{Key: KeyEnter})
			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}
			continue
		case '\n':
			events = append(events, Event{Key: KeyEnter})
			continue
		case '\b', '\x7f':
			events = append(events, Event{Key: KeyBackspace})
			continue
		case '\x03':
			events = append(events, Event{Key: KeyInterrupt})
			continue
		}

		if b < utf8.RuneSelf {
			if b >= 0x20 && b < 0x7f {
				events = append(events, Event{Key: KeyRune, Rune: rune(b)})
			}
			continue
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r != utf8.RuneError && unicode.IsPrint(r) {
			events = append(events, Event{Key: KeyRune, Rune: r})
		}
		i += size - 1
	}
	return events
}

// parseSequence decodes the escape sequence starting at its introducer ('['
// or 'O'). It returns the number of bytes consumed, which is always at least
// one, and whether the sequence maps to a key.
func parseSequence(seq []byte) (Event, int, bool) {
	if seq[0] == 'O' {
		if len(seq) < 2 {
			return Event{}, 1, false
		}
		k, ok := arrowKey(seq[1])
		return Event{Key: k}, 2, ok
	}

	// CSI: parameter and intermediate bytes (0x20-0x3F), then a final byte
	// (0x40-0x7E). Modifiers such as ESC[1;5A still name an arrow.
	j := 1
	for j < len(seq) && seq[j] >= 0x20 && seq[j] <= 0x3f {
		j++
	}
	if j >= len(seq) || seq[j] < 0x40 || seq[j] > 0x7e {
		return Event{}, j, false
	}

	params, final := string(seq[1:j]), seq[j]
	if k, ok := arrowKey(final); ok {
		return Event{Key: k}, j + 1, true
	}
	if final == '~' && (params == "3" || strings.HasPrefix(params, "3;")) {
		return Event{Key: KeyBackspace}, j + 1, true
	}
	return Event{}, j + 1, false
}

func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}
