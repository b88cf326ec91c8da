package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvngraph/mvngraph/internal/cli"
	"github.com/mvngraph/mvngraph/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps validation error codes to distinct process exit codes so
// scripts can tell failure kinds apart.
func exitCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeMissingOption:
		return 2
	case errors.ErrCodeConflictingOptions:
		return 3
	case errors.ErrCodeInvalidPackage:
		return 4
	case errors.ErrCodeInvalidDepth:
		return 5
	case errors.ErrCodeInvalidURL:
		return 6
	default:
		return 1
	}
}
