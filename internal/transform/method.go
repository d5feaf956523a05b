package transform

import (
	"fmt"
	"strings"
)

// Method is the canonical name of a transform.
type Method string

// Catalog methods.
const (
	XOR           Method = "xor"
	Arithmetic    Method = "arithmetic"
	BitShift      Method = "bit-shift"
	AdjacentSwap  Method = "adjacent-swap"
	RandomSwap    Method = "random-swap"
	BlockSwap     Method = "block-swap"
	ChannelRotate Method = "channel-rotate"
)

// aliases maps alternative spellings to canonical names.
//
//nolint:gochecknoglobals
var aliases = map[string]Method{
	"bitwise-xor":   XOR,
	"bit_shift":     BitShift,
	"adjacent_swap": AdjacentSwap,
	"random_swap":   RandomSwap,
	"block_swap":    BlockSwap,
	"channel_shift": ChannelRotate,
	"channel-shift": ChannelRotate,
}

// ParseMethod resolves a user-supplied name (case-insensitive, aliases allowed).
func ParseMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if alias, ok := aliases[normalized]; ok {
		return alias, nil
	}

	method := Method(normalized)
	if _, ok := catalog[method]; ok {
		return method, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

func (m Method) String() string {
	return string(m)
}
