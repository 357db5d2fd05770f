// Package parser puts os.Args and environment values into Config/NodeParam structures and validates them
package parser

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

const defaultProgName = "minigrep"

// Resolve builds Config from argv (program name included) and STRICT read through lookup
func Resolve(args []string, lookup model.EnvLookup) (*model.Config, error) {
	if len(args) < 3 {
		prog := defaultProgName
		if len(args) > 0 && args[0] != "" {
			prog = args[0]
		}
		return nil, fmt.Errorf("%w!\nUsage: %s <filename> <query>", model.ErrMissingArguments, prog)
	}

	return &model.Config{
		Filename: args[1],
		Query:    args[2],
		Strict:   isStrict(lookup),
	}, nil
}

// только точные "1" или "true", регистр учитывается
func isStrict(lookup model.EnvLookup) bool {
	if lookup == nil {
		return false
	}
	val, ok := lookup(model.StrictEnv)
	if !ok {
		return false
	}
	return val == "1" || val == "true"
}

// ResolveNodeURL returns the search node base url if MINIGREP_NODE is set, "" means local search
func ResolveNodeURL(lookup model.EnvLookup) string {
	if lookup == nil {
		return ""
	}
	val, _ := lookup(model.NodeEnv)
	return strings.TrimRight(strings.TrimSpace(val), "/")
}

// ResolveColor reads MINIGREP_COLOR; unknown values mean auto
func ResolveColor(lookup model.EnvLookup) model.ColorMode {
	if lookup == nil {
		return model.ColorAuto
	}
	val, _ := lookup(model.ColorEnv)
	switch mode := model.ColorMode(strings.ToLower(strings.TrimSpace(val))); mode {
	case model.ColorAlways, model.ColorNever:
		return mode
	default:
		return model.ColorAuto
	}
}

// InitNodeParam parses minigrep-node flags; -address wins over MINIGREP_NODE_ADDR
func InitNodeParam(args []string, lookup model.EnvLookup) (*model.NodeParam, error) {
	flagParser := flag.NewFlagSet("minigrep-node", flag.ContinueOnError)
	flagParser.SetOutput(io.Discard)
	addr := flagParser.String("address", "", fmt.Sprintf("listen address of the search node (default %q)", model.DefaultNodeAddress))

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if *addr == "" && lookup != nil {
		if v, ok := lookup(model.NodeAddrEnv); ok {
			*addr = strings.TrimSpace(v)
			if *addr == "" {
				return nil, errors.New("empty search-node address in " + model.NodeAddrEnv)
			}
		}
	}
	if *addr == "" {
		*addr = model.DefaultNodeAddress
	}

	return &model.NodeParam{Address: *addr}, nil
}
