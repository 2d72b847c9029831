package nbt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Format renders t in stringified-tag notation. The output is deterministic
// (compound keys are sorted) and never empty.
func Format(t Tag) string {
	var b strings.Builder
	write(&b, t)
	return b.String()
}

func write(b *strings.Builder, t Tag) {
	switch v := Deref(t).(type) {
	case nil:
		b.WriteString("<nil>")
	case End:
		b.WriteString("END")
	case Byte:
		b.WriteString(strconv.FormatInt(int64(v), 10))
		b.WriteByte('b')
	case Short:
		b.WriteString(strconv.FormatInt(int64(v), 10))
		b.WriteByte('s')
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Long:
		b.WriteString(strconv.FormatInt(int64(v), 10))
		b.WriteByte('L')
	case Float:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		b.WriteByte('f')
	case Double:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
		b.WriteByte('d')
	case String:
		b.WriteString(strconv.Quote(string(v)))
	case ByteArray:
		b.WriteString("[B;")
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(e), 10))
			b.WriteByte('b')
		}
		b.WriteByte(']')
	case IntArray:
		b.WriteString("[I;")
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(e), 10))
		}
		b.WriteByte(']')
	case LongArray:
		b.WriteString("[L;")
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(e, 10))
			b.WriteByte('L')
		}
		b.WriteByte(']')
	case List:
		b.WriteByte('[')
		for i, e := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			write(b, e)
		}
		b.WriteByte(']')
	case Compound:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, k)
			b.WriteByte(':')
			write(b, v[k])
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "<%T>", t)
	}
}

func writeKey(b *strings.Builder, k string) {
	if isBareKey(k) {
		b.WriteString(k)
		return
	}
	b.WriteString(strconv.Quote(k))
}

func isBareKey(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.', r == '+':
		default:
			return false
		}
	}
	return true
}
