// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command cmsadmin is the operator console for the CMS backend.
//
// # Invocation Sequence
//
//  1. Parse flags (cobra).
//  2. Load configuration from environment variables; flags override it.
//  3. Initialize the structured logger on stderr.
//  4. Open the session token store (file, Redis or memory).
//  5. Wire the API client and the feature services.
//  6. Run the command and print its result on stdout.
//
// Every failure is printed once. A 401 from the backend also clears the
// stored token so the next command asks for a fresh login.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	defer app.close()

	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	command, err := root.ExecuteContextC(ctx)
	if err != nil {
		app.fail(command, err)
		return 1
	}
	return 0
}
