// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the diffwin command line.
//
// The surface is small on purpose. Bare invocation opens the menu,
// two positional paths open the diff view directly, and a handful of
// flags tune startup behavior.
//
// # Usage
//
//	args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprint(os.Stderr, cli.Usage())
//	    os.Exit(2)
//	}
package cli
