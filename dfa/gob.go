package dfa

import (
	"bytes"
	"encoding/gob"
)

// gobState mirrors State's fields for serialization; State keeps trans
// unexported so external callers can't mutate a built DFA in place, but
// gob only sees exported fields, so GobEncode/GobDecode bridge the gap.
type gobState struct {
	Accepting   bool
	WinningRule int
	Trans       [alphabetSize]int32
}

// GobEncode implements gob.GobEncoder.
func (s *State) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobState{
		Accepting:   s.Accepting,
		WinningRule: s.WinningRule,
		Trans:       s.trans,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (s *State) GobDecode(data []byte) error {
	var gs gobState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&gs); err != nil {
		return err
	}
	s.Accepting = gs.Accepting
	s.WinningRule = gs.WinningRule
	s.trans = gs.Trans
	return nil
}
