package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
// Without a command name, build runs.
func runMain(args []string, env *Environment) int {
	cmd, rest := "build", args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "build":
		return runCommand(cmd, rest, env, printBuildUsage, runBuild)
	case "validate":
		return runCommand(cmd, rest, env, printValidateUsage, runValidate)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "cv2pdf %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintln(env.Stderr, "error:", err)
			return ExitUsage
		}
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

type commandFunc func(ctx context.Context, f *cliFlags, env *Environment) error

// runCommand parses flags, runs fn under a signal-aware context, and maps
// its error to an exit code.
func runCommand(name string, args []string, env *Environment, usage usageFunc, fn commandFunc) int {
	f, err := parseFlags(name, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		fmt.Fprintln(env.Stderr)
		usage(env.Stderr)
		return exitCodeFor(err)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := fn(ctx, f, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
