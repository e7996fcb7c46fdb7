package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pancake/pancake"
)

// parseStack reads pancake sizes from args. Each arg may hold one size or
// several separated by spaces or commas, so `3 1 2`, `"3 1 2"` and `3,1,2`
// are equivalent. The result is validated as a permutation of 1..N; when
// size > 0 the stack must also hold exactly size pancakes.
func parseStack(args []string, size int) (pancake.Stack, error) {
	var s pancake.Stack
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(pancake.ErrInvalidStack, "parse %q", f)
			}
			s = append(s, v)
		}
	}
	if size > 0 && len(s) != size {
		return nil, errors.Wrapf(pancake.ErrInvalidStack, "want %d pancakes, got %d", size, len(s))
	}
	if err := pancake.Validate(s); err != nil {
		return nil, errors.WithStack(err)
	}

	return s, nil
}
