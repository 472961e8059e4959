package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/colourspace"
	"github.com/spf13/pflag"
)

// methodValue is a pflag.Value that only accepts recognised distance-method
// names. The engine itself tolerates unknown methods (falling back to
// Oklab), but typos on the command line should fail loudly.
type methodValue colourspace.Method

var _ pflag.Value = (*methodValue)(nil)

func (m *methodValue) String() string {
	return string(*m)
}

func (m *methodValue) Set(s string) error {
	v := colourspace.Method(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return fmt.Errorf("unknown matching method %q (valid: %s)", s, methodNames())
	}
	*m = methodValue(v)
	return nil
}

func (m *methodValue) Type() string {
	return "method"
}

func methodNames() string {
	methods := colourspace.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
