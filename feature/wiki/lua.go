package wiki

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pss-assistant/core/entity"

	"github.com/Shopify/go-lua"
)

var luaIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// DataLua renders the retriever's whole dataset as a Lua chunk returning
// a table keyed by design id.
func DataLua(ctx context.Context, retriever *entity.Retriever) (string, error) {
	data, err := retriever.Data(ctx)
	if err != nil {
		return "", err
	}
	return EncodeLua(data), nil
}

// EncodeLua renders data as
//
//	p={
//	["1"]={RoomDesignId="1",RoomName="Lift"},
//	["2"]={...}
//	}
//	return p
//
// Records are ordered by id and properties by name.
func EncodeLua(data entity.DesignsData) string {
	entries := make([]string, 0, len(data))
	for _, id := range data.SortedIDs() {
		info := data[id]
		keys := make([]string, 0, len(info))
		for k := range info {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		props := make([]string, 0, len(keys))
		for _, k := range keys {
			props = append(props, luaKey(k)+"="+luaString(info[k]))
		}
		entries = append(entries, fmt.Sprintf("[%s]={%s}", luaString(id), strings.Join(props, ",")))
	}

	return strings.Join([]string{
		"p={",
		strings.Join(entries, ",\n"),
		"}",
		"return p",
	}, "\n")
}

func luaKey(name string) string {
	if luaIdentifier.MatchString(name) && !luaKeywords[name] {
		return name
	}
	return "[" + luaString(name) + "]"
}

func luaString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03d`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ParseLua runs a data chunk in an empty Lua state and reads back the
// returned table of records.
func ParseLua(src string) (entity.DesignsData, error) {
	state := lua.NewState()
	if err := lua.LoadString(state, src); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeTable {
		return nil, fmt.Errorf("data chunk must return a table, got %s", lua.TypeNameOf(state, -1))
	}

	data := make(entity.DesignsData)
	root := state.AbsIndex(-1)
	state.PushNil()
	for state.Next(root) {
		if state.TypeOf(-2) != lua.TypeString || state.TypeOf(-1) != lua.TypeTable {
			state.Pop(2)
			return nil, fmt.Errorf("record keys must be strings holding tables")
		}
		id, _ := state.ToString(-2)
		data[id] = readRecord(state, state.AbsIndex(-1))
		state.Pop(1)
	}
	state.Pop(1)
	return data, nil
}

func readRecord(state *lua.State, index int) entity.DesignInfo {
	info := make(entity.DesignInfo)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			value, _ := state.ToString(-1)
			info[key] = value
		}
		state.Pop(1)
	}
	return info
}

// ValidateLua checks that src evaluates to exactly want records.
func ValidateLua(src string, want int) error {
	data, err := ParseLua(src)
	if err != nil {
		return err
	}
	if len(data) != want {
		return fmt.Errorf("data chunk holds %d records, expected %d", len(data), want)
	}
	return nil
}
