package cmds

import (
	"fmt"
	"strings"
)

// kvArg extracts a KEY=value positional parameter. The value may be empty
// ("msg=" yields "", true); callers decide whether empty is acceptable.
func kvArg(args []string, key string) (string, bool) {
	prefix := key + "="
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix), true
		}
	}
	return "", false
}

// checkKVArgs rejects positional arguments that are not KEY=value pairs for
// one of the allowed keys, so typos fail instead of being ignored.
func checkKVArgs(args []string, allowed ...string) error {
	for _, arg := range args {
		key, _, found := strings.Cut(arg, "=")
		ok := false
		if found {
			for _, want := range allowed {
				if key == want {
					ok = true
					break
				}
			}
		}
		if !ok {
			return fmt.Errorf("unexpected argument %q (expected %s=value)", arg, strings.Join(allowed, "=value, "))
		}
	}
	return nil
}
