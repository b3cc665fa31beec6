package logging

import (
	"log/slog"
	"strings"
)

const redacted = "[redacted]"

// secretKeys are attribute names whose values never reach the output.
var secretKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"authorization": {},
	"secret_key":    {},
}

func isSecret(key string) bool {
	_, ok := secretKeys[strings.ToLower(key)]
	return ok
}

// redact returns args with the values of secret keys masked. args is left
// untouched; a copy is made only when something has to be masked.
func redact(args []any) []any {
	var out []any
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case slog.Attr:
			if isSecret(v.Key) {
				out = cloneOnce(out, args)
				out[i] = slog.String(v.Key, redacted)
			}
		case string:
			if i+1 >= len(args) {
				break
			}
			if isSecret(v) {
				out = cloneOnce(out, args)
				out[i+1] = redacted
			}
			i++
		}
	}
	if out == nil {
		return args
	}
	return out
}

func cloneOnce(out, args []any) []any {
	if out != nil {
		return out
	}
	return append([]any(nil), args...)
}
