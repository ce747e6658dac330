// Package keyboard implements the Apple 1's keyboard input registers:
// a data register that returns the last key pressed with bit 7 forced
// set, and a control register whose bit 7 reports whether a key is
// waiting to be read. Input is polled once per CPU step by the
// scheduler rather than interrupt-driven.
package keyboard

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Keyboard puts the controlling terminal into raw (cbreak) mode so
// keystrokes are delivered to Poll one at a time, without waiting for a
// newline and without the terminal echoing them back. A background
// goroutine performs the blocking read off stdin; Poll only ever drains
// the single-key mailbox it fills, so the CPU's frame loop never
// blocks waiting on input.
type Keyboard struct {
	fd       int
	oldState *term.State

	mu          sync.Mutex
	mailbox     uint8
	mailboxFull bool

	keyPressed uint8
	kbdcr      uint8
}

// New puts fd (normally os.Stdin's descriptor) into raw mode and starts
// the background reader. Call Cleanup to restore the terminal.
func New(fd int) (*Keyboard, error) {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	k := &Keyboard{fd: fd, oldState: old}
	go k.readLoop()
	return k, nil
}

// readLoop blocks on stdin one byte at a time for the life of the
// process, overwriting the mailbox with whatever arrives. A keystroke
// that arrives before the previous one is polled is lost, matching the
// real keyboard's single-byte input latch.
func (k *Keyboard) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		k.mu.Lock()
		k.mailbox = buf[0]
		k.mailboxFull = true
		k.mu.Unlock()
	}
}

// Poll drains the mailbox, if a key has arrived since the last Poll,
// into the data and control registers. Apple 1 keyboards send CR for
// the return key; since a raw-mode terminal delivers LF for Enter, LF
// is translated to CR here to match.
func (k *Keyboard) Poll() {
	k.mu.Lock()
	full := k.mailboxFull
	b := k.mailbox
	k.mailboxFull = false
	k.mu.Unlock()
	if !full {
		return
	}
	key := b & 0x7F
	if key == 0x0A {
		key = 0x0D
	}
	k.keyPressed = key
	k.kbdcr |= 0x80
}

// Read implements io.Reader8 for the KBD_DATA register: it returns the
// last polled key with bit 7 set, clears the pending key, and clears
// the control register's key-waiting flag.
func (k *Keyboard) Read() uint8 {
	val := k.keyPressed
	k.keyPressed = 0
	k.kbdcr &^= 0x80
	return val | 0x80
}

// StatusPort returns an io.Reader8 for the KBD_CTRL register, whose
// single meaningful bit (7) reports whether a key is waiting.
func (k *Keyboard) StatusPort() *statusPort {
	return &statusPort{k: k}
}

type statusPort struct{ k *Keyboard }

func (s *statusPort) Read() uint8 { return s.k.kbdcr }

// Cleanup restores the terminal to the mode it was in before New. The
// background reader goroutine is left running until os.Stdin closes or
// the process exits; there is no portable way to interrupt the pending
// blocking read.
func (k *Keyboard) Cleanup() error {
	return term.Restore(k.fd, k.oldState)
}
