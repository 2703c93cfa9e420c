package types

import (
	"fmt"
	"strings"
)

// CallFlag is the permission scope of a contract invocation.
type CallFlag uint8

const (
	NoneFlag    CallFlag = 0
	ReadStates  CallFlag = 1 << 0
	WriteStates CallFlag = 1 << 1
	AllowCall   CallFlag = 1 << 2
	AllowNotify CallFlag = 1 << 3

	States   = ReadStates | WriteStates
	ReadOnly = ReadStates | AllowCall
	All      = States | AllowCall | AllowNotify
)

// Named combinations are checked before single bits so String prefers them.
var callFlagNames = []struct {
	flag CallFlag
	name string
}{
	{All, "All"},
	{States, "States"},
	{ReadOnly, "ReadOnly"},
	{ReadStates, "ReadStates"},
	{WriteStates, "WriteStates"},
	{AllowCall, "AllowCall"},
	{AllowNotify, "AllowNotify"},
}

// ParseCallFlags parses a comma separated list of flag names such as
// "ReadStates, AllowCall" or "All".
func ParseCallFlags(s string) (CallFlag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoneFlag, fmt.Errorf("empty call flags")
	}
	var out CallFlag
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "None" {
			continue
		}
		found := false
		for _, n := range callFlagNames {
			if strings.EqualFold(n.name, name) {
				out |= n.flag
				found = true
				break
			}
		}
		if !found {
			return NoneFlag, fmt.Errorf("unknown call flag %q in %q", name, s)
		}
	}
	return out, nil
}

func (f CallFlag) String() string {
	if f == NoneFlag {
		return "None"
	}
	var parts []string
	rest := f
	for _, n := range callFlagNames {
		if rest&n.flag == n.flag {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, ", ")
}
