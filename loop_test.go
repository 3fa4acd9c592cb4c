package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/icy-engine/icy/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

type fakeWindow struct {
	events     []sdl.Event
	open       bool
	displays   int
	displayErr error
	// closeAfter closes the window once this many frames were displayed, 0 disables it.
	closeAfter int
}

func (f *fakeWindow) Create(title string, x, y, width, height int32, flags uint32) error {
	f.open = true
	return nil
}

func (f *fakeWindow) PollEvent() sdl.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func (f *fakeWindow) IsOpen() bool { return f.open }
func (f *fakeWindow) Close()       { f.open = false }
func (f *fakeWindow) Destroy()     { f.open = false }

func (f *fakeWindow) Display() error {
	if f.displayErr != nil {
		return f.displayErr
	}
	f.displays++
	if f.closeAfter > 0 && f.displays >= f.closeAfter {
		f.open = false
	}
	return nil
}

func escape(eventType uint32) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: eventType, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}
}

func TestHandleEvent(t *testing.T) {
	cases := []struct {
		name      string
		event     sdl.Event
		wantsOpen bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, false},
		{"escape down", escape(sdl.KEYDOWN), false},
		{"escape up", escape(sdl.KEYUP), true},
		{"other key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_a}}, true},
		{"mouse", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}, true},
	}
	for _, c := range cases {
		w := &fakeWindow{open: true}
		handleEvent(w, c.event)
		if w.IsOpen() != c.wantsOpen {
			t.Errorf("%s: expected open=%v", c.name, c.wantsOpen)
		}
	}
}

func TestLoopStopsOnEscape(t *testing.T) {
	w := &fakeWindow{open: true, events: []sdl.Event{escape(sdl.KEYDOWN)}}
	stats, err := loop(w)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w.displays != 0 || stats.frames != 0 {
		t.Errorf("No frame should be displayed after ESC, got %d", w.displays)
	}
}

func TestLoopCountsFrames(t *testing.T) {
	w := &fakeWindow{open: true, closeAfter: 5}
	stats, err := loop(w)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.frames != 5 {
		t.Errorf("Expected 5 frames, got %d", stats.frames)
	}
	if stats.slowest > stats.elapsed {
		t.Errorf("Inconsistent timing %v", stats)
	}
}

func TestLoopReturnsDisplayError(t *testing.T) {
	displayErr := errors.New("swap failed")
	w := &fakeWindow{open: true, displayErr: displayErr}
	if _, err := loop(w); !errors.Is(err, displayErr) {
		t.Errorf("Expected the display error, got %v", err)
	}
}

func TestLoopOnClosedWindow(t *testing.T) {
	stats, err := loop(&fakeWindow{})
	if err != nil || stats.frames != 0 {
		t.Errorf("A closed window runs no frames, got %d (%v)", stats.frames, err)
	}
}

func TestFrameStats(t *testing.T) {
	var s frameStats
	if s.fps() != 0 {
		t.Errorf("Empty stats have no fps")
	}
	s.add(3)
	s.add(7)
	s.add(5)
	s.elapsed = 2e9
	if s.frames != 3 || s.slowest != 7 {
		t.Errorf("Unexpected stats %+v", s)
	}
	if s.fps() != 1.5 {
		t.Errorf("Expected 1.5 fps, got %v", s.fps())
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for flag := range flagKeys {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing flag --%s", flag)
		}
	}
	devices, _, err := cmd.Find([]string{"devices"})
	if err != nil || devices.Name() != "devices" {
		t.Errorf("Expected a devices sub-command, got %v", err)
	}
}

func TestReportDevicesOnFailedBringUp(t *testing.T) {
	devices := func() []renderer.DeviceReport {
		return []renderer.DeviceReport{
			{Name: "llvmpipe", Reason: "missing device extensions"},
			{Name: "Test GPU", Reason: "not a discrete GPU"},
		}
	}
	var out bytes.Buffer
	err := reportDevices(&out, func() error { return renderer.ErrNoSuitableDevice }, devices)
	if !errors.Is(err, renderer.ErrNoSuitableDevice) {
		t.Errorf("Expected ErrNoSuitableDevice, got %v", err)
	}
	for _, want := range []string{"llvmpipe", "Test GPU", "not a discrete GPU"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Output should contain %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := reportDevices(&out, func() error { return nil }, devices); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "llvmpipe") {
		t.Errorf("Devices should be listed after a successful bring-up")
	}
}
