package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errIndexedArg     = errors.New("explicit argument indexes are not supported")
	errMissingArg     = errors.New("missing argument")
	errExtraArgs      = errors.New("too many arguments")
	errIncompleteVerb = errors.New("incomplete format directive")
)

const (
	intVerbs   = "dboOxXcU"
	floatVerbs = "eEfFgG"
	flagChars  = "+-# 0"
)

// convertArgs converts shell arguments into values suited to the verbs in format that consume them.
func convertArgs(format string, raw []string) ([]any, error) {
	var (
		out  []any
		next int
	)
	take := func() (string, error) {
		if next >= len(raw) {
			return "", fmt.Errorf("%w %d", errMissingArg, next+1)
		}
		s := raw[next]
		next++
		return s, nil
	}
	takeInt := func() error {
		s, err := take()
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid width or precision %q: %w", s, err)
		}
		out = append(out, n)
		return nil
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte(flagChars, format[i]) >= 0 {
			i++
		}
		// Width and precision.
	spec:
		for ; i < len(format); i++ {
			switch c := format[i]; {
			case c == '[':
				return nil, errIndexedArg
			case c == '*':
				if err := takeInt(); err != nil {
					return nil, err
				}
			case c == '.' || (c >= '0' && c <= '9'):
			default:
				break spec
			}
		}
		if i >= len(format) {
			return nil, errIncompleteVerb
		}
		verb := format[i]
		if verb == '%' {
			continue
		}
		s, err := take()
		if err != nil {
			return nil, err
		}
		v, err := convertArg(verb, s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if next < len(raw) {
		return nil, fmt.Errorf("%w: %d unused", errExtraArgs, len(raw)-next)
	}
	return out, nil
}

func convertArg(verb byte, s string) (any, error) {
	switch {
	case strings.IndexByte(intVerbs, verb) >= 0:
		if verb == 'c' || verb == 'U' {
			if r := []rune(s); len(r) == 1 {
				return r[0], nil
			}
		}
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q for %%%c: %w", s, verb, err)
		}
		return n, nil
	case strings.IndexByte(floatVerbs, verb) >= 0:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q for %%%c: %w", s, verb, err)
		}
		return f, nil
	case verb == 't':
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q for %%t: %w", s, err)
		}
		return b, nil
	default:
		return s, nil
	}
}
