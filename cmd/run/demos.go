package main

import (
	"github.com/fedesilva/minnieml/buffer"
	"github.com/fedesilva/minnieml/value"
)

// demo is a small program written against the runtime, the way compiled
// MinnieML code uses it: explicit releases, buffered output, checked and
// unchecked array access where bounds are proven by construction.
type demo struct {
	name       string
	desc       string
	argHint    string
	defaultArg string
	run        func(out *buffer.Buffer, arg string) error
}

var demos = []demo{
	{
		name:       "fizzbuzz",
		desc:       "classic FizzBuzz through the output buffer",
		argHint:    "count",
		defaultArg: "15",
		run:        runFizzBuzz,
	},
	{
		name:       "sieve",
		desc:       "prime sieve over a fixed integer array",
		argHint:    "limit",
		defaultArg: "100",
		run:        runSieve,
	},
	{
		name:       "nqueens",
		desc:       "count N-queens solutions",
		argHint:    "board size",
		defaultArg: "8",
		run:        runNQueens,
	},
	{
		name:       "greet",
		desc:       "string builder and concatenation",
		argHint:    "name",
		defaultArg: "World",
		run:        runGreet,
	},
	{
		name:       "reverse",
		desc:       "split words into a string array and emit them reversed",
		argHint:    "text",
		defaultArg: "the quick brown fox",
		run:        runReverse,
	},
}

func findDemo(name string) (*demo, bool) {
	for i := range demos {
		if demos[i].name == name {
			return &demos[i], true
		}
	}
	return nil, false
}

// argInt parses a positive integer argument, falling back to def.
func argInt(arg string, def int64) int64 {
	if arg == "" {
		return def
	}
	s := value.FromString(arg)
	defer s.Release()
	v, err := value.ParseInt(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func runFizzBuzz(out *buffer.Buffer, arg string) error {
	n := argInt(arg, 15)

	fizz := value.FromString("Fizz")
	buzz := value.FromString("Buzz")
	fizzbuzz := value.FromString("FizzBuzz")
	defer fizz.Release()
	defer buzz.Release()
	defer fizzbuzz.Release()

	for i := int64(1); i <= n; i++ {
		var err error
		switch {
		case i%15 == 0:
			err = out.WriteLine(fizzbuzz)
		case i%3 == 0:
			err = out.WriteLine(fizz)
		case i%5 == 0:
			err = out.WriteLine(buzz)
		default:
			err = out.WriteIntLine(i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func runSieve(out *buffer.Buffer, arg string) error {
	n := argInt(arg, 100)
	if n < 2 {
		n = 2
	}

	flags := value.NewIntArray(n + 1)
	defer flags.Release()

	// Indices below are in [0, n] by construction, so the unchecked
	// accessors apply.
	for i := int64(2); i*i <= n; i++ {
		if flags.UncheckedGet(i) != 0 {
			continue
		}
		for j := i * i; j <= n; j += i {
			flags.UncheckedSet(j, 1)
		}
	}

	space := value.FromString(" ")
	defer space.Release()

	count := int64(0)
	for i := int64(2); i <= n; i++ {
		if flags.UncheckedGet(i) == 0 {
			count++
			if err := out.WriteInt(i); err != nil {
				return err
			}
			if err := out.Write(space); err != nil {
				return err
			}
		}
	}
	if err := out.WriteLine(value.Str{}); err != nil {
		return err
	}

	label := value.FromString("primes: ")
	defer label.Release()
	if err := out.Write(label); err != nil {
		return err
	}
	return out.WriteIntLine(count)
}

func runNQueens(out *buffer.Buffer, arg string) error {
	n := argInt(arg, 8)
	if n > 12 {
		n = 12
	}

	cols := value.NewIntArray(n)
	defer cols.Release()

	label := value.FromString("solutions: ")
	defer label.Release()
	if err := out.Write(label); err != nil {
		return err
	}
	return out.WriteIntLine(placeQueens(cols, 0, n))
}

// placeQueens tries every column for the queen at row; rows below row hold
// already-placed queens, so the unchecked accessors apply.
func placeQueens(cols value.IntArray, row, n int64) int64 {
	if row == n {
		return 1
	}
	total := int64(0)
	for c := int64(0); c < n; c++ {
		if queenSafe(cols, row, c) {
			cols.UncheckedSet(row, c)
			total += placeQueens(cols, row+1, n)
		}
	}
	return total
}

func queenSafe(cols value.IntArray, row, c int64) bool {
	for r := int64(0); r < row; r++ {
		pc := cols.UncheckedGet(r)
		if pc == c {
			return false
		}
		d := row - r
		if pc == c-d || pc == c+d {
			return false
		}
	}
	return true
}

func runGreet(out *buffer.Buffer, arg string) error {
	if arg == "" {
		arg = "World"
	}

	name := value.FromString(arg)
	bang := value.FromString("!")
	defer name.Release()
	defer bang.Release()

	b := value.NewBuilder(16)
	b.AppendString("Hello, ")
	b.Append(name)
	greeting := b.Finalize()
	defer greeting.Release()

	line := value.Concat(greeting, bang)
	defer line.Release()

	return out.WriteLine(line)
}

func runReverse(out *buffer.Buffer, arg string) error {
	if arg == "" {
		arg = "the quick brown fox"
	}
	text := value.FromString(arg)
	defer text.Release()

	words := splitWords(text)
	defer words.Release()

	space := value.FromString(" ")
	defer space.Release()

	for i := words.Len() - 1; i >= 0; i-- {
		if err := out.Write(words.Get(i)); err != nil {
			return err
		}
		if i > 0 {
			if err := out.Write(space); err != nil {
				return err
			}
		}
	}
	return out.WriteLine(value.Str{})
}

// splitWords cuts text on single spaces into an owned string array.
func splitWords(text value.Str) value.StrArray {
	raw := text.Bytes()

	count := int64(1)
	for _, c := range raw {
		if c == ' ' {
			count++
		}
	}

	words := value.NewStrArray(count)
	start, slot := int64(0), int64(0)
	for i := int64(0); i <= int64(len(raw)); i++ {
		if i == int64(len(raw)) || raw[i] == ' ' {
			words.Set(slot, value.Substring(text, start, i-start))
			slot++
			start = i + 1
		}
	}
	return words
}
