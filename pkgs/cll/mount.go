// Package cll provides utilities for building CLI applications with urfave/cli/v3.
package cll

import "github.com/urfave/cli/v3"

// Registerable adds itself, usually as a subcommand, to a root command.
type Registerable interface {
	Register(*cli.Command) *cli.Command
}

// Register applies each Registerable to root in order.
//
//	root := &cli.Command{Name: "claudemd"}
//	root = cll.Register(root, sectionsCmd, initCmd)
func Register(root *cli.Command, subs ...Registerable) *cli.Command {
	for _, s := range subs {
		root = s.Register(root)
	}

	return root
}

// EnvWithPrefix returns a function that creates environment variable sources
// with a consistent prefix.
//
//	env := cll.EnvWithPrefix("CLAUDEMD_")
//	flag := &cli.StringFlag{
//		Name:    "config",
//		Sources: env("CONFIG_FILE"), // reads CLAUDEMD_CONFIG_FILE
//	}
func EnvWithPrefix(prefix string) func(strs ...string) cli.ValueSourceChain {
	return func(strs ...string) cli.ValueSourceChain {
		return cli.EnvVars(prefixed(prefix, strs)...)
	}
}

// EnvWithFallback is EnvWithPrefix that also reads the bare names after the
// prefixed ones, for variables shared with other tools.
//
//	env := cll.EnvWithFallback("CLAUDEMD_")
//	env("CONFIG_FILE") // reads CLAUDEMD_CONFIG_FILE, then CONFIG_FILE
func EnvWithFallback(prefix string) func(strs ...string) cli.ValueSourceChain {
	return func(strs ...string) cli.ValueSourceChain {
		return cli.EnvVars(append(prefixed(prefix, strs), strs...)...)
	}
}

func prefixed(prefix string, strs []string) []string {
	out := make([]string, len(strs))
	for i, str := range strs {
		out[i] = prefix + str
	}
	return out
}
