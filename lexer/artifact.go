package lexer

import (
	"encoding/gob"
	"fmt"
	"os"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Save gob-encodes l to path, for reuse by a separate scan process without
// recompiling the spec (spec.md §6's "gen" step).
func (l *Lexer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errorutil.New(fmt.Sprintf("lexer: cannot create artifact %q: %s", path, err))
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(l); err != nil {
		return errorutil.New(fmt.Sprintf("lexer: cannot encode artifact %q: %s", path, err))
	}
	return nil
}

// Load reads a Lexer artifact previously written by Save (spec.md §6's
// "scan" step, consuming the output of "gen").
func Load(path string) (*Lexer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorutil.New(fmt.Sprintf("lexer: cannot open artifact %q: %s", path, err))
	}
	defer f.Close()

	var l Lexer
	if err := gob.NewDecoder(f).Decode(&l); err != nil {
		return nil, errorutil.New(fmt.Sprintf("lexer: cannot decode artifact %q: %s", path, err))
	}
	return &l, nil
}
