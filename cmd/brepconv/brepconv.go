// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command brepconv converts between *.brep and *.step CAD files.
// The conversion itself is not implemented yet; the command
// validates its arguments and reports what it would do.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// conversion is a validated request: the source and destination
// paths and the input format.
type conversion struct {
	Source string
	Dest   string
	Format string
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Format conversion between *.brep & *.step files.")
	fmt.Fprintln(w, "Synopsis:")
	fmt.Fprintln(w, "\tbrepconv [-f (step | brep)] <source> [-o <dest>]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
}

// parseArgs validates the command line. Options may come before or
// after the source path, per the synopsis, so after the first parse
// any arguments trailing the source are parsed again as flags.
func parseArgs(w io.Writer, args []string) (*conversion, error) {
	fs := flag.NewFlagSet("brepconv", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(fs) }
	format := fs.String("f", "", "input format, step or brep; only required if the file extension isn't .step or .brep")
	out := fs.String("o", "", "output path; if omitted, the proper extension is appended to the source name")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return nil, fmt.Errorf("brepconv: missing source file")
	}
	source := fs.Arg(0)
	if rest := fs.Args()[1:]; len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		if fs.NArg() != 0 {
			fs.Usage()
			return nil, fmt.Errorf("brepconv: unexpected argument %q", fs.Arg(0))
		}
	}

	in := *format
	if in == "" {
		switch strings.ToLower(filepath.Ext(source)) {
		case ".step":
			in = "step"
		case ".brep":
			in = "brep"
		default:
			return nil, fmt.Errorf("brepconv: cannot infer format of %s; use -f", source)
		}
	}
	switch in {
	case "step", "brep":
	default:
		return nil, fmt.Errorf("brepconv: unknown format %q", in)
	}

	dest := *out
	if dest == "" {
		ext := ".step"
		if in == "step" {
			ext = ".brep"
		}
		dest = strings.TrimSuffix(source, filepath.Ext(source)) + ext
	}
	return &conversion{Source: source, Dest: dest, Format: in}, nil
}

func main() {
	conv, err := parseArgs(os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "brepconv: conversion %s -> %s is not implemented yet\n", conv.Source, conv.Dest)
	os.Exit(1)
}
