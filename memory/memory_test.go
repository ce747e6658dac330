package memory

import (
	"testing"
)

type fakeReader struct{ val uint8 }

func (f *fakeReader) Read() uint8 { return f.val }

type fakeWriter struct{ got uint8 }

func (f *fakeWriter) Write(val uint8) { f.got = val }

func TestReadWriteRoundTrip(t *testing.T) {
	f := New(0xF000)
	tests := []struct {
		name string
		addr uint16
		val  uint8
	}{
		{"zero page", 0x0010, 0x42},
		{"ram mid", 0x1234, 0xAB},
		{"just below rom", 0xEFFF, 0x7F},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f.Write(test.addr, test.val)
			if got := f.Read(test.addr); got != test.val {
				t.Errorf("Read(0x%04X) = 0x%02X, want 0x%02X", test.addr, got, test.val)
			}
		})
	}
}

func TestWriteMasksTo8Bits(t *testing.T) {
	f := New(0xF000)
	wide := 0x1FF
	f.Write(0x1000, uint8(wide)) // truncated at the call site, as Write's uint8 parameter guarantees
	if got := f.Read(0x1000); got != 0xFF {
		t.Errorf("Read() = 0x%02X, want 0xFF", got)
	}
}

func TestROMWritesIgnored(t *testing.T) {
	f := New(0xF000)
	if err := f.LoadData([]uint8{0x55}, 0xF000); err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	f.Write(0xF000, 0xAA)
	if got := f.Read(0xF000); got != 0x55 {
		t.Errorf("Read(0xF000) after ROM write = 0x%02X, want 0x55 (write ignored)", got)
	}
}

func TestROMBoundaryIsHalfOpen(t *testing.T) {
	f := New(0xF000)
	f.Write(0xEFFF, 0x11)
	if got := f.Read(0xEFFF); got != 0x11 {
		t.Errorf("Read(0xEFFF) = 0x%02X, want 0x11 (one below ROM start is writable)", got)
	}
	f.Write(0xF000, 0x22)
	if got := f.Read(0xF000); got == 0x22 {
		t.Errorf("Read(0xF000) = 0x%02X, ROM start should reject writes", got)
	}
}

func TestReaderHookTakesPrecedence(t *testing.T) {
	f := New(0xF000)
	r := &fakeReader{val: 0x99}
	f.MapIO(0xD010, r, nil)
	f.data[0xD010] = 0x00
	if got := f.Read(0xD010); got != 0x99 {
		t.Errorf("Read(0xD010) = 0x%02X, want 0x99 from hook", got)
	}
}

func TestWriterHookNotConsultedForROM(t *testing.T) {
	f := New(0xD000)
	w := &fakeWriter{}
	f.MapIO(0xD012, nil, w)
	f.Write(0xD012, 0x41)
	if w.got != 0 {
		t.Errorf("writer hook invoked for ROM address, got = 0x%02X", w.got)
	}
}

func TestWriterHookInvokedOutsideROM(t *testing.T) {
	f := New(0xF000)
	w := &fakeWriter{}
	f.MapIO(0xD012, nil, w)
	f.Write(0xD012, 0x41)
	if w.got != 0x41 {
		t.Errorf("writer hook got = 0x%02X, want 0x41", w.got)
	}
	if got := f.Read(0xD012); got != 0 {
		t.Errorf("Read(0xD012) = 0x%02X, want 0 since no reader hook is registered and backing array was never written", got)
	}
}

func TestLoadDataOverflowErrors(t *testing.T) {
	f := New(0xF000)
	err := f.LoadData(make([]uint8, 10), 0xFFFF)
	if _, ok := err.(RangeError); !ok {
		t.Fatalf("LoadData() err = %v (%T), want RangeError", err, err)
	}
}

func TestLoadDataBypassesROM(t *testing.T) {
	f := New(0xF000)
	if err := f.LoadData([]uint8{0xDE, 0xAD}, 0xF000); err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if got := f.Read(0xF000); got != 0xDE {
		t.Errorf("Read(0xF000) = 0x%02X, want 0xDE", got)
	}
	if got := f.Read(0xF001); got != 0xAD {
		t.Errorf("Read(0xF001) = 0x%02X, want 0xAD", got)
	}
}

func TestResetVector(t *testing.T) {
	f := New(0xF000)
	f.ResetVector()
	if got := f.Read(ResetVectorLow); got != 0x00 {
		t.Errorf("Read(ResetVectorLow) = 0x%02X, want 0x00", got)
	}
	if got := f.Read(ResetVectorHigh); got != 0xF0 {
		t.Errorf("Read(ResetVectorHigh) = 0x%02X, want 0xF0", got)
	}
}
