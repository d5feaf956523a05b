package transform

import (
	"fmt"
	"strings"
)

// Operation is an arithmetic operation.
type Operation string

// Arithmetic operations.
const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// ParseOperation accepts the long names and the short forms add/sub/mul/div.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add", "+":
		return Add, nil
	case "subtract", "sub", "-":
		return Subtract, nil
	case "multiply", "mul", "*":
		return Multiply, nil
	case "divide", "div", "/":
		return Divide, nil
	default:
		return "", fmt.Errorf("%w: operation %q (want add, subtract, multiply or divide)", ErrInvalidParameter, name)
	}
}

// Inverse returns the operation undoing o.
func (o Operation) Inverse() Operation {
	switch o {
	case Add:
		return Subtract
	case Subtract:
		return Add
	case Multiply:
		return Divide
	case Divide:
		return Multiply
	default:
		return o
	}
}

// Direction is a bit-shift direction.
type Direction string

// Shift directions.
const (
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection accepts left or right.
func ParseDirection(name string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(name))) {
	case Left:
		return Left, nil
	case Right:
		return Right, nil
	default:
		return "", fmt.Errorf("%w: direction %q (want left or right)", ErrInvalidParameter, name)
	}
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}

	return Left
}

// Params configures a transform. Each method reads only its own fields, and
// decrypting requires the exact values used to encrypt.
type Params struct {
	// xor
	Key int

	// arithmetic
	Operation Operation
	Value     int

	// bit-shift
	Amount    int
	Direction Direction

	// random-swap
	Percentage float64

	// random-swap, block-swap
	Seed int64

	// block-swap
	BlockSize int
	// Strict makes block-swap fail with ErrDimensionMismatch instead of
	// leaving an image with no complete block unchanged.
	Strict bool

	// channel-rotate
	Rotation int
}

// DefaultParams returns the defaults of the command-line tool.
func DefaultParams() Params {
	return Params{
		Key:        123,
		Operation:  Add,
		Value:      50,
		Amount:     2,
		Direction:  Left,
		Percentage: 0.5,
		Seed:       42,
		BlockSize:  4,
		Rotation:   1,
	}
}
