package keyboard

import "testing"

// deliver simulates readLoop depositing one byte, without requiring an
// actual terminal or the background goroutine.
func deliver(k *Keyboard, b byte) {
	k.mu.Lock()
	k.mailbox = b
	k.mailboxFull = true
	k.mu.Unlock()
}

func TestPollThenReadSetsBit7(t *testing.T) {
	k := &Keyboard{}
	deliver(k, 'A')
	k.Poll()
	status := k.StatusPort()
	if status.Read()&0x80 == 0 {
		t.Fatalf("status bit 7 not set after poll")
	}
	got := k.Read()
	if got != 'A'|0x80 {
		t.Errorf("Read() = 0x%02X, want 0x%02X", got, 'A'|0x80)
	}
	if status.Read()&0x80 != 0 {
		t.Errorf("status bit 7 still set after Read")
	}
}

func TestLinefeedMappedToCarriageReturn(t *testing.T) {
	k := &Keyboard{}
	deliver(k, 0x0A)
	k.Poll()
	got := k.Read()
	if got != 0x0D|0x80 {
		t.Errorf("Read() = 0x%02X, want 0x%02X (CR with bit 7 set)", got, 0x0D|0x80)
	}
}

func TestNoPendingKeyLeavesStatusClear(t *testing.T) {
	k := &Keyboard{}
	status := k.StatusPort()
	if status.Read() != 0 {
		t.Errorf("status = 0x%02X, want 0x00 with no key pressed", status.Read())
	}
	if got := k.Read(); got != 0x80 {
		t.Errorf("Read() with no key = 0x%02X, want 0x80", got)
	}
}

func TestOverwrittenKeyBeforePollIsLost(t *testing.T) {
	k := &Keyboard{}
	deliver(k, 'X')
	deliver(k, 'Y')
	k.Poll()
	got := k.Read()
	if got != 'Y'|0x80 {
		t.Errorf("Read() = 0x%02X, want 0x%02X ('Y')", got, 'Y'|0x80)
	}
}

func TestHighBitMaskedOnInput(t *testing.T) {
	k := &Keyboard{}
	deliver(k, 'Z'|0x80)
	k.Poll()
	got := k.Read()
	if got != 'Z'|0x80 {
		t.Errorf("Read() = 0x%02X, want 0x%02X", got, 'Z'|0x80)
	}
}
