// Command apple1e runs the Apple 1 emulator: it loads a monitor ROM
// image (and optionally a second program image) into the machine's
// memory fabric, then drives the CPU at its real 1 MHz clock rate
// until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/schembri/apple1e/cpu"
	"github.com/schembri/apple1e/keyboard"
	"github.com/schembri/apple1e/memory"
	"github.com/schembri/apple1e/scheduler"
	"github.com/schembri/apple1e/video"
)

// Magic addresses the Apple 1's PIA exposes to the CPU.
const (
	kbdData  = 0xD010
	kbdCtrl  = 0xD011
	videoReg = 0xD012
)

// hexFlag parses a flag.Value as a base-16 integer without requiring a
// leading "0x", matching the reference CLI's hex_int argument type.
type hexFlag uint16

func (h *hexFlag) String() string { return fmt.Sprintf("%X", uint16(*h)) }

func (h *hexFlag) Set(s string) error {
	v, err := parseHex16(s)
	if err != nil {
		return err
	}
	*h = hexFlag(v)
	return nil
}

func parseHex16(s string) (uint16, error) {
	var v uint32
	if _, err := fmt.Sscanf(s, "%X", &v); err != nil {
		return 0, fmt.Errorf("invalid hex value %q: %w", s, err)
	}
	if v > 0xFFFF {
		return 0, fmt.Errorf("hex value %q overflows 16 bits", s)
	}
	return uint16(v), nil
}

func main() {
	monitorROM := flag.String("monitor_rom", "", "Monitor ROM to load and run")
	programData := flag.String("program_data", "", "Program data to load")
	monitorStart := hexFlag(0xF000)
	programStart := hexFlag(0x2000)
	flag.Var(&monitorStart, "monitor_start", "Start offset for the Monitor ROM as a hex int. The reset vector will be initialized to this value")
	flag.Var(&programStart, "program_start", "Start offset for the program data as a hex int")
	flag.Parse()

	mem := memory.New(uint16(monitorStart))

	if *monitorROM != "" {
		loadFile(mem, *monitorROM, uint16(monitorStart))
	}
	if *programData != "" {
		loadFile(mem, *programData, uint16(programStart))
	}

	disp := video.New(os.Stdout)
	kbd, err := keyboard.New(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Can't set up keyboard: %v", err)
	}
	defer kbd.Cleanup()

	mem.MapIO(videoReg, nil, disp)
	mem.MapIO(kbdData, kbd, nil)
	mem.MapIO(kbdCtrl, kbd.StatusPort(), nil)

	chip := cpu.Init(mem)

	sched := scheduler.New(chip, kbd)

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		close(stop)
	}()

	if err := sched.Run(stop); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		kbd.Cleanup()
		os.Exit(1)
	}
	fmt.Println("\n[EXIT]")
}

func loadFile(mem *memory.Fabric, path string, start uint16) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Can't load %s: %v", path, err)
	}
	if err := mem.LoadData(data, start); err != nil {
		log.Fatalf("Can't load %s at 0x%04X: %v", path, start, err)
	}
}
