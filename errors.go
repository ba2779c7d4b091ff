package huffpack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeek is returned by Encode when the input cannot be rewound for the
// second pass.
var ErrSeek = errors.New("cannot rewind input for encoding pass")

// MissingCodePolicy selects what Encode does with an input byte that has no
// Code in the table.
type MissingCodePolicy byte

const (
	// MissingCodeFail aborts encoding with a *MissingCodeError.
	MissingCodeFail MissingCodePolicy = iota

	// MissingCodeSkip emits nothing for the byte and records it in
	// EncodeResult.Missing.
	MissingCodeSkip
)

var missingCodePolicyNames = [...]string{
	MissingCodeFail: "fail",
	MissingCodeSkip: "skip",
}

// String returns the string representation of this policy.
func (p MissingCodePolicy) String() string {
	if int(p) < len(missingCodePolicyNames) {
		return missingCodePolicyNames[p]
	}
	return fmt.Sprintf("MissingCodePolicy(%d)", byte(p))
}

var _ fmt.Stringer = MissingCodePolicy(0)

// Unencodable identifies one input byte that had no Code.
type Unencodable struct {
	Offset int64
	Symbol Symbol
}

// MissingCodeError reports input bytes that could not be encoded because the
// CodeTable has no Code for them.
type MissingCodeError struct {
	Missing []Unencodable
}

// Error fulfills the error interface.
func (e *MissingCodeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d input byte(s) have no Huffman code:", len(e.Missing))
	for index, item := range e.Missing {
		if index == 8 {
			fmt.Fprintf(&sb, " and %d more", len(e.Missing)-index)
			break
		}
		fmt.Fprintf(&sb, " %d@%d", item.Symbol, item.Offset)
	}
	return sb.String()
}

var _ error = (*MissingCodeError)(nil)
