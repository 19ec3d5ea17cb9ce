// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgui-demo/main.go
// Summary: Runs a demo window full-screen in the terminal.
// Usage: texelgui-demo [-app gallery|editor] [-log path] [text...]

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/framegrace/texelgui/config"
	"github.com/framegrace/texelgui/internal/devshell"
)

func main() {
	app := flag.String("app", "gallery", "Demo to run: "+strings.Join(devshell.Apps(), ", "))
	logPath := flag.String("log", "", "Log file (default: <config dir>/logs/texelgui-demo.log)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("texelgui-demo: stdin and stdout must be a terminal")
	}

	file, err := setupLogging(*logPath)
	if err != nil {
		log.Fatalf("texelgui-demo: %v", err)
	}
	defer file.Close()

	log.Printf("texelgui-demo: starting %s", *app)
	if err := devshell.RunApp(*app, flag.Args()); err != nil {
		log.Printf("texelgui-demo: %v", err)
		fmt.Fprintf(os.Stderr, "texelgui-demo: %v\n", err)
		os.Exit(1)
	}
	log.Printf("texelgui-demo: stopped")
}

// setupLogging sends the log to a file, since the terminal belongs to the
// window.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "logs", "texelgui-demo.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
