// Package converter dispatches one line of input to the codec and turns
// the outcome into the status string shown to the user.
package converter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/5amu/guidconv/pkg/encoder"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Kind int

const (
	KindNone Kind = iota
	KindRawHex
	KindGUID
)

const (
	SuccessSymbol = "✅"
	FailureSymbol = "❌"

	InvalidGUIDMessage   = "Invalid GUID"
	InvalidRawHexMessage = "Invalid Raw Hex."
	UnrecognizedMessage  = "Invalid input. It's neither raw hex nor guid."
)

func (k Kind) String() string {
	switch k {
	case KindRawHex:
		return "Raw Hex"
	case KindGUID:
		return "GUID"
	default:
		return ""
	}
}

// Result is the outcome of a single conversion. Either Err is set or
// Value holds the converted text.
type Result struct {
	Input string
	Shape encoder.Shape
	ID    uuid.UUID
	Kind  Kind
	Value string
	Err   error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Message is the status text without the leading symbol.
func (r Result) Message() string {
	if r.OK() {
		return fmt.Sprintf("%s: %s", r.Kind, r.Value)
	}
	return ErrorMessage(r.Err)
}

func (r Result) Symbol() string {
	if r.OK() {
		return SuccessSymbol
	}
	return FailureSymbol
}

func (r Result) String() string {
	return r.Symbol() + " " + r.Message()
}

// ErrorMessage maps a codec error to its fixed user facing text.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, encoder.ErrMalformedCanonical):
		return InvalidGUIDMessage
	case errors.Is(err, encoder.ErrMalformedRawHex):
		return InvalidRawHexMessage
	default:
		return UnrecognizedMessage
	}
}

func Convert(input string) Result {
	s := strings.TrimSpace(input)
	r := Result{Input: s, Shape: encoder.Classify(s)}

	switch r.Shape {
	case encoder.CanonicalShaped:
		id, err := encoder.DecodeCanonical(s)
		if err != nil {
			r.Err = err
			break
		}
		r.ID, r.Kind, r.Value = id, KindRawHex, encoder.EncodeRawHex(id)
	case encoder.RawHexShaped:
		id, ok := encoder.DecodeRawHex(s)
		if !ok {
			r.Err = encoder.ErrMalformedRawHex
			break
		}
		r.ID, r.Kind, r.Value = id, KindGUID, encoder.EncodeCanonical(id)
	case encoder.Unrecognized:
		r.Err = encoder.ErrUnrecognizedShape
	}

	log.WithFields(log.Fields{"input": s, "shape": r.Shape}).Debugln("[converter]", r.Message())
	return r
}
