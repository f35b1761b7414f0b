package macro

import (
	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"
)

func (r *Runner) sceneTable(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"add":       r.add,
		"update":    r.update,
		"delete":    r.delete,
		"duplicate": r.duplicate,
		"select":    r.selectIDs,
		"toggle":    r.toggle,
		"clear":     r.clear,
		"selected":  r.selected,
		"mode":      r.mode,
		"snapshot":  r.snapshot,
		"undo":      r.undo,
		"redo":      r.redo,
		"objects":   r.objects,
		"get":       r.get,
		"find":      r.find,
	})
}

// scene.add(type) -> id | nil
func (r *Runner) add(L *lua.LState) int {
	t, err := engine.ParseObjectType(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LString(r.ed.AddObject(t).String()))
	return 1
}

// scene.update(id, fields [, transient]) -> bool
//
// fields may hold name, color, position, rotation (radians) and scale;
// vectors are {x, y, z} arrays or tables with x/y/z keys.
func (r *Runner) update(L *lua.LState) int {
	id := checkID(L, 1)
	fields := L.CheckTable(2)
	transient := L.OptBool(3, false)

	var p editor.Patch
	if v := fields.RawGetString("name"); v != lua.LNil {
		s := lua.LVAsString(v)
		p.Name = &s
	}
	if v := fields.RawGetString("color"); v != lua.LNil {
		s := lua.LVAsString(v)
		p.Color = &s
	}
	p.Position = vecField(L, fields, "position")
	p.Rotation = vecField(L, fields, "rotation")
	p.Scale = vecField(L, fields, "scale")

	L.Push(lua.LBool(r.ed.UpdateObject(id, p, transient)))
	return 1
}

// scene.delete(id) -> bool
func (r *Runner) delete(L *lua.LState) int {
	L.Push(lua.LBool(r.ed.DeleteObject(checkID(L, 1))))
	return 1
}

// scene.duplicate(id) -> id | nil
func (r *Runner) duplicate(L *lua.LState) int {
	dup, ok := r.ed.DuplicateObject(checkID(L, 1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(dup.String()))
	return 1
}

// scene.select(id, ...) replaces the selection.
func (r *Runner) selectIDs(L *lua.LState) int {
	ids := make([]uuid.UUID, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		ids = append(ids, checkID(L, i))
	}
	r.ed.SelectObjects(ids)
	return 0
}

func (r *Runner) toggle(L *lua.LState) int {
	r.ed.ToggleSelection(checkID(L, 1))
	return 0
}

func (r *Runner) clear(L *lua.LState) int {
	r.ed.ClearSelection()
	return 0
}

// scene.selected() -> {id, ...}
func (r *Runner) selected(L *lua.LState) int {
	t := L.NewTable()
	for _, id := range r.ed.SelectedIDs() {
		t.Append(lua.LString(id.String()))
	}
	L.Push(t)
	return 1
}

// scene.mode([name]) -> name; sets the mode when given one.
func (r *Runner) mode(L *lua.LState) int {
	if L.GetTop() >= 1 {
		m, err := editor.ParseTransformMode(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		r.ed.SetTransformMode(m)
	}
	L.Push(lua.LString(r.ed.TransformMode().String()))
	return 1
}

func (r *Runner) snapshot(L *lua.LState) int {
	r.ed.SaveSnapshot()
	return 0
}

func (r *Runner) undo(L *lua.LState) int {
	L.Push(lua.LBool(r.ed.Undo()))
	return 1
}

func (r *Runner) redo(L *lua.LState) int {
	L.Push(lua.LBool(r.ed.Redo()))
	return 1
}

// scene.objects() -> {object, ...} in document order
func (r *Runner) objects(L *lua.LState) int {
	t := L.NewTable()
	for _, obj := range r.ed.Objects() {
		t.Append(objectTable(L, obj))
	}
	L.Push(t)
	return 1
}

// scene.get(id) -> object | nil
func (r *Runner) get(L *lua.LState) int {
	obj, ok := r.ed.Object(checkID(L, 1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(objectTable(L, obj))
	return 1
}

// scene.find(name) -> id | nil, the first object with that name
func (r *Runner) find(L *lua.LState) int {
	name := L.CheckString(1)
	for _, obj := range r.ed.Objects() {
		if obj.Name == name {
			L.Push(lua.LString(obj.ID.String()))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

func checkID(L *lua.LState, n int) uuid.UUID {
	id, err := uuid.Parse(L.CheckString(n))
	if err != nil {
		L.ArgError(n, "object id expected")
	}
	return id
}

func vecField(L *lua.LState, fields *lua.LTable, key string) *mgl32.Vec3 {
	v := fields.RawGetString(key)
	if v == lua.LNil {
		return nil
	}
	t, ok := v.(*lua.LTable)
	if !ok {
		L.RaiseError("%s: table expected, got %s", key, v.Type().String())
		return nil
	}

	var out mgl32.Vec3
	for i, name := range []string{"x", "y", "z"} {
		c := t.RawGetString(name)
		if c == lua.LNil {
			c = t.RawGetInt(i + 1)
		}
		n, ok := c.(lua.LNumber)
		if !ok {
			L.RaiseError("%s.%s: number expected", key, name)
			return nil
		}
		out[i] = float32(n)
	}
	return &out
}

func vecTable(L *lua.LState, v mgl32.Vec3) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("x", lua.LNumber(v[0]))
	t.RawSetString("y", lua.LNumber(v[1]))
	t.RawSetString("z", lua.LNumber(v[2]))
	return t
}

func objectTable(L *lua.LState, obj engine.SceneObject) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LString(obj.ID.String()))
	t.RawSetString("type", lua.LString(obj.Type.String()))
	t.RawSetString("name", lua.LString(obj.Name))
	t.RawSetString("color", lua.LString(obj.Color))
	t.RawSetString("position", vecTable(L, obj.Position))
	t.RawSetString("rotation", vecTable(L, obj.Rotation))
	t.RawSetString("scale", vecTable(L, obj.Scale))
	return t
}
