package tetris

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LoadCatalogFile builds a Catalog from a Lua shape script, so custom piece
// sets can ship as plain files. The script must define a global function
// get_shapes() returning a list of tables:
//
//	{ name = "I", color = 1, rows = {"XXXX"} }
//
// Filled cells are marked with 'X', 'x', '#' or '1'; every other character
// is empty. Rows of one shape must share the same width.
func LoadCatalogFile(path string) (*Catalog, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("failed to run shape script: %w", err)
	}

	L.Push(L.GetGlobal("get_shapes"))
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("failed to call get_shapes: %w", err)
	}
	result := L.Get(-1)
	L.Pop(1)

	tbl, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("get_shapes must return a table, got %s", result.Type())
	}

	var templates []Template
	var convErr error

	tbl.ForEach(func(_, value lua.LValue) {
		if convErr != nil {
			return
		}
		entry, ok := value.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("shape entry must be a table, got %s", value.Type())
			return
		}
		tmpl, err := templateFromLua(entry, len(templates)+1)
		if err != nil {
			convErr = err
			return
		}
		templates = append(templates, tmpl)
	})

	if convErr != nil {
		return nil, convErr
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("shape script %s defines no shapes", path)
	}

	return newCatalog(templates), nil
}

func templateFromLua(entry *lua.LTable, defaultColor int) (Template, error) {
	name := entry.RawGetString("name").String()
	if name == "" || name == "nil" {
		return Template{}, fmt.Errorf("shape %d is missing a name", defaultColor)
	}

	color := defaultColor
	if v := entry.RawGetString("color"); v != lua.LNil {
		color = int(lua.LVAsNumber(v))
	}
	if color <= 0 {
		return Template{}, fmt.Errorf("shape %q has invalid color %d", name, color)
	}

	rowsValue, ok := entry.RawGetString("rows").(*lua.LTable)
	if !ok {
		return Template{}, fmt.Errorf("shape %q has no rows table", name)
	}

	var mask [][]int
	var rowErr error
	rowsValue.ForEach(func(_, value lua.LValue) {
		if rowErr != nil {
			return
		}
		row := parseShapeRow(value.String())
		if len(mask) > 0 && len(row) != len(mask[0]) {
			rowErr = fmt.Errorf("shape %q has rows of unequal width", name)
			return
		}
		mask = append(mask, row)
	})
	if rowErr != nil {
		return Template{}, rowErr
	}

	filled := 0
	for _, row := range mask {
		for _, v := range row {
			filled += v
		}
	}
	if filled == 0 {
		return Template{}, fmt.Errorf("shape %q has no filled cells", name)
	}

	return Template{Name: name, Color: color, Shape: Shape{mask: mask}}, nil
}

func parseShapeRow(s string) []int {
	row := make([]int, 0, len(s))
	for _, r := range s {
		switch r {
		case 'X', 'x', '#', '1':
			row = append(row, 1)
		default:
			row = append(row, 0)
		}
	}
	return row
}
