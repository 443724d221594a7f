package input

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []Event
	}{
		{"empty", "", nil},
		{"letters", "wS", []Event{{Key: KeyRune, Rune: 'w'}, {Key: KeyRune, Rune: 'S'}}},
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Event{{Key: KeyUp}, {Key: KeyDown}, {Key: KeyRight}, {Key: KeyLeft}}},
		{"ss3 arrows", "\x1bOA\x1bOB", []Event{{Key: KeyUp}, {Key: KeyDown}}},
		{"ss3 function key dropped", "\x1bOP", nil},
		{"ctrl-up is an arrow", "\x1b[1;5A", []Event{{Key: KeyUp}}},
		{"delete key", "\x1b[3~", []Event{{Key: KeyBackspace}}},
		{"home and end dropped", "\x1b[H\x1b[F\x1b[1~\x1b[4~", nil},
		{"unknown csi then letter", "\x1b[15~x", []Event{{Key: KeyRune, Rune: 'x'}}},
		{"unterminated csi dropped", "\x1b[1;", nil},
		{"csi cut by control byte", "\x1b[1\r", []Event{{Key: KeyEnter}}},
		{"lone escape", "\x1b", []Event{{Key: KeyEscape}}},
		{"escape then letter", "\x1bq", []Event{{Key: KeyEscape}, {Key: KeyRune, Rune: 'q'}}},
		{"carriage return", "\r", []Event{{Key: KeyEnter}}},
		{"crlf is one enter", "\r\n", []Event{{Key: KeyEnter}}},
		{"line feed", "\n", []Event{{Key: KeyEnter}}},
		{"backspace and delete", "\b\x7f", []Event{{Key: KeyBackspace}, {Key: KeyBackspace}}},
		{"ctrl-c", "\x03", []Event{{Key: KeyInterrupt}}},
		{"other control dropped", "\x01\x02a", []Event{{Key: KeyRune, Rune: 'a'}}},
		{"utf-8", "é", []Event{{Key: KeyRune, Rune: 'é'}}},
		{"space", " ", []Event{{Key: KeyRune, Rune: ' '}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse([]byte(tt.in)))
		})
	}
}

func TestInputHelpers(t *testing.T) {
	in := Input{Events: Parse([]byte("P\x1b[A"))}
	assert.True(t, in.Pressed('p'))
	assert.True(t, in.Pressed('P'))
	assert.False(t, in.Pressed('q'))
	assert.True(t, in.Has(KeyUp))
	assert.False(t, in.Has(KeyEnter))
	assert.True(t, in.Any())
	assert.False(t, Input{}.Any())
}

func TestParse_SequencesNeverTypeText(t *testing.T) {
	for _, seq := range []string{"\x1b[3~", "\x1b[H", "\x1b[1;5A", "\x1bOP", "\x1b[2;3R", "\x1b[<0;10;5M"} {
		in := Input{Events: Parse([]byte(seq))}
		for _, e := range in.Events {
			assert.NotEqual(t, KeyRune, e.Key, "%q", seq)
		}
		assert.False(t, in.Pressed('p'), "%q", seq)
		assert.False(t, in.Pressed('a'), "%q", seq)
	}
}

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestStream_HeldKeysExpire(t *testing.T) {
	s := newStream()
	now := time.Now()

	feed(s, "w\x1b[B")
	in := s.ReadAt(now)
	assert.True(t, in.P1Up)
	assert.True(t, in.P2Down)
	assert.False(t, in.P1Down)
	assert.False(t, in.P2Up)
	assert.Len(t, in.Events, 2)

	in = s.ReadAt(now.Add(keyHoldDuration / 2))
	assert.True(t, in.P1Up, "key is still held within the hold window")
	assert.Empty(t, in.Events)

	in = s.ReadAt(now.Add(keyHoldDuration))
	assert.False(t, in.P1Up)
	assert.False(t, in.P2Down)
}

func TestStream_OppositeDirectionReleases(t *testing.T) {
	s := newStream()
	now := time.Now()

	feed(s, "w")
	require.True(t, s.ReadAt(now).P1Up)

	feed(s, "s")
	in := s.ReadAt(now.Add(time.Millisecond))
	assert.True(t, in.P1Down)
	assert.False(t, in.P1Up)
}

func TestStream_Reset(t *testing.T) {
	s := newStream()
	now := time.Now()
	feed(s, "w")
	require.True(t, s.ReadAt(now).P1Up)

	s.Reset()
	assert.False(t, s.ReadAt(now).P1Up)
}

func TestStream_InterruptAndClose(t *testing.T) {
	s := newStream()
	feed(s, "\x03")
	close(s.ch)

	in := s.ReadAt(time.Now())
	assert.True(t, in.Interrupt)
	assert.True(t, in.Closed)

	// Reading after close must not block or panic.
	in = s.ReadAt(time.Now())
	assert.True(t, in.Closed)
	assert.Empty(t, in.Events)
}

func TestStartStream_ReadsFromReader(t *testing.T) {
	s := StartStream(strings.NewReader("q"))
	deadline := time.Now().Add(time.Second)
	var in Input
	for time.Now().Before(deadline) {
		in = s.Read()
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	// Bytes and the close may arrive in separate reads; the close always comes last.
	assert.True(t, in.Closed)
}
