package payload

import (
	"strconv"

	"github.com/projectunified/unidialog-go/internal/nbt"
)

// Decode flattens a compound tag into string key/value pairs. Anything that
// is not a compound, including nil, decodes to an empty map. Pointer tags are
// read through. Decode never fails: tag variants without a dedicated rule
// fall back to nbt.Format.
func Decode(t nbt.Tag) map[string]string {
	c, ok := nbt.Deref(t).(nbt.Compound)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(c))
	for k, v := range c {
		out[k] = Value(v)
	}
	return out
}

// Value converts a single tag to its payload string.
func Value(t nbt.Tag) string {
	switch v := nbt.Deref(t).(type) {
	case nbt.Int:
		return strconv.FormatInt(int64(v), 10)
	case nbt.Long:
		return strconv.FormatInt(int64(v), 10)
	case nbt.Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case nbt.Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case nbt.String:
		return string(v)
	case nbt.Byte:
		return strconv.FormatBool(v.Bool())
	default:
		return nbt.Format(t)
	}
}
