// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package winstate

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "windows.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissing(t *testing.T) {
	s := openTemp(t)
	_, _, ok, err := s.Load("nothing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatalf("expected no entry")
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := openTemp(t)
	if err := s.Save("editor", geo.Ext(80, 24), host.SizeNormal); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("editor", geo.Ext(100, 30), host.SizeMaximized); err != nil {
		t.Fatalf("Save: %v", err)
	}
	size, state, ok, err := s.Load("editor")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if size != geo.Ext(100, 30) {
		t.Errorf("size = %v, want 100x30", size)
	}
	if state != host.SizeMaximized {
		t.Errorf("state = %v, want maximized", state)
	}
}

func TestMinimizedKeepsSize(t *testing.T) {
	s := openTemp(t)
	if err := s.Save("w", geo.Ext(50, 20), host.SizeNormal); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("w", geo.Ext(0, 0), host.SizeMinimized); err != nil {
		t.Fatalf("Save: %v", err)
	}
	size, state, ok, _ := s.Load("w")
	if !ok || size != geo.Ext(50, 20) || state != host.SizeNormal {
		t.Errorf("got %v %v %v, want 50x20 normal", ok, size, state)
	}
}

func TestForget(t *testing.T) {
	s := openTemp(t)
	s.Save("w", geo.Ext(10, 10), host.SizeNormal)
	if err := s.Forget("w"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	if _, _, ok, _ := s.Load("w"); ok {
		t.Errorf("entry survived Forget")
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Save("w", geo.Ext(64, 16), host.SizeNormal)
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	size, _, ok, err := s.Load("w")
	if err != nil || !ok || size != geo.Ext(64, 16) {
		t.Errorf("got %v %v %v", size, ok, err)
	}
}

func TestClosedStore(t *testing.T) {
	s := openTemp(t)
	s.Close()
	if err := s.Save("w", geo.Ext(1, 1), host.SizeNormal); !errors.Is(err, ErrClosed) {
		t.Errorf("Save after Close = %v", err)
	}
	if _, _, _, err := s.Load("w"); !errors.Is(err, ErrClosed) {
		t.Errorf("Load after Close = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
