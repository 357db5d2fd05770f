// Package model contains the configuration, search modes, errors and DTO shared by the cli and the search node
package model

import (
	"errors"
)

// EnvLookup - same signature as os.LookupEnv, injected so the resolver never touches process state directly
type EnvLookup func(key string) (string, bool)

const (
	StrictEnv   = "STRICT"
	NodeEnv     = "MINIGREP_NODE"      // base url of a search node, e.g. http://localhost:8080
	NodeAddrEnv = "MINIGREP_NODE_ADDR" // listen address for minigrep-node
	LogLevelEnv = "MINIGREP_LOG_LEVEL"
	ColorEnv    = "MINIGREP_COLOR" // auto|always|never

	DefaultNodeAddress = ":8080"
)

var (
	ErrMissingArguments = errors.New("not enough arguments")
	ErrIsDirectory      = errors.New("is a directory")
	ErrNotUTF8          = errors.New("file content is not valid UTF-8")
	ErrHashMismatch     = errors.New("result hash mismatch")
	ErrNodeUnavailable  = errors.New("search node is unavailable")
)

// Config - immutable run parameters, built once per invocation
type Config struct {
	Query    string
	Filename string
	Strict   bool // case-sensitive search, enabled by STRICT=1|true
}

// SearchMode selects the line predicate used by the search engine
type SearchMode int

const (
	CaseInsensitive SearchMode = iota
	CaseSensitive
)

func (m SearchMode) String() string {
	switch m {
	case CaseSensitive:
		return "case-sensitive"
	default:
		return "case-insensitive"
	}
}

func ModeFor(strict bool) SearchMode {
	if strict {
		return CaseSensitive
	}
	return CaseInsensitive
}

// Mode returns the search mode selected by the Strict flag
func (c Config) Mode() SearchMode {
	return ModeFor(c.Strict)
}

// ColorMode - when matches are highlighted
type ColorMode string

const (
	ColorAuto   = ColorMode("auto") // only when stdout is a terminal
	ColorAlways = ColorMode("always")
	ColorNever  = ColorMode("never")
)

// SearchTask - body of POST /search; Contents is a pointer so that a missing field and an empty document differ
type SearchTask struct {
	TaskID   string  `json:"tid"`
	Query    string  `json:"query"` // empty query is legal and matches every line
	Strict   bool    `json:"strict"`
	Contents *string `json:"contents" binding:"required"`
}

func NewSearchTask(query string, strict bool, contents string) SearchTask {
	return SearchTask{Query: query, Strict: strict, Contents: &contents}
}

// Text returns the document, "" when Contents is absent
func (t SearchTask) Text() string {
	if t.Contents == nil {
		return ""
	}
	return *t.Contents
}

// SearchResult - node response; HashSumm is xxhash64 over Lines and lets the caller verify the payload
type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Lines    []string `json:"lines"`
}

type NodeParam struct {
	Address string
}
