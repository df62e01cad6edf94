package projection_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projector/projection"
	"projector/store"
)

// tree projects obj and returns the plain-value form of the result.
func tree(t *testing.T, obj any, paths []string) any {
	t.Helper()

	v := projection.Project(obj, paths)

	node, ok := v.(*projection.Node)
	require.True(t, ok, "expected *projection.Node, got %s", spew.Sdump(v))

	return node.Interface()
}

func assertTree(t *testing.T, want, got any) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func customers() []*store.Customer {
	return []*store.Customer{
		{ID: 1, FirstName: "Ada", Address: &store.Address{City: "London", Zip: "SW1Y"}},
		{ID: 2, FirstName: "Grace"},
		{ID: 1, FirstName: "Ada", Address: &store.Address{City: "London", Zip: "SW1Y"}},
	}
}

func TestProjectList_NilPropagates(t *testing.T) {
	var list []*store.Customer

	assert.Nil(t, projection.ProjectList(list, []string{"ID"}))
	assert.Nil(t, projection.ProjectList(list, nil))
}

func TestProjectList_Empty(t *testing.T) {
	out := projection.ProjectList([]*store.Customer{}, []string{"ID"})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestProjectList_OrderAndLength(t *testing.T) {
	list := customers()
	list = append(list, nil)

	paths := []string{"ID", "Address.City"}
	out := projection.ProjectList(list, paths)
	require.Len(t, out, len(list))

	for i, item := range list {
		want := projection.Project(item, paths).(*projection.Node).Interface()
		assertTree(t, want, out[i].(*projection.Node).Interface())
	}

	assertTree(t, map[string]any{"ID": nil, "Address": map[string]any{"City": nil}},
		out[3].(*projection.Node).Interface())
}

func TestProjectList_PassThroughElements(t *testing.T) {
	list := customers()

	out := projection.ProjectList(list, nil)
	require.Len(t, out, len(list))

	for i := range list {
		assert.Same(t, list[i], out[i])
	}
}

func TestProject_AbsentPathsIsIdentity(t *testing.T) {
	c := customers()[0]
	assert.Same(t, c, projection.Project(c, nil))

	rec := projection.Record{"A": 1}
	assert.Equal(t, rec, projection.Project(rec, nil))
}

func TestProject_EmptyPathsIsEmptyObject(t *testing.T) {
	assertTree(t, map[string]any{}, tree(t, customers()[0], []string{}))
}

func TestProject_SingleSegment(t *testing.T) {
	assertTree(t, map[string]any{"A": 1}, tree(t, projection.Record{"A": 1, "B": 2}, []string{"A"}))
}

func TestProject_NestedPath(t *testing.T) {
	src := projection.Record{"Addr": projection.Record{"City": "X", "Zip": "1"}}

	assertTree(t,
		map[string]any{"Addr": map[string]any{"City": "X"}},
		tree(t, src, []string{"Addr.City"}),
	)
}

func TestProject_SharedPrefixMerges(t *testing.T) {
	src := projection.Record{"Addr": projection.Record{"City": "X", "Zip": "1"}}

	node := projection.Project(src, []string{"Addr.City", "Addr.Zip"}).(*projection.Node)
	assert.Equal(t, []string{"Addr"}, node.Keys(), "exactly one Addr node")

	assertTree(t,
		map[string]any{"Addr": map[string]any{"City": "X", "Zip": "1"}},
		node.Interface(),
	)
}

func TestProject_MissingPropertyIsNullLeaf(t *testing.T) {
	assertTree(t, map[string]any{"B": nil}, tree(t, projection.Record{"A": 1}, []string{"B"}))
}

func TestProject_NullIntermediate(t *testing.T) {
	assertTree(t,
		map[string]any{"Addr": map[string]any{"City": nil}},
		tree(t, projection.Record{"Addr": nil}, []string{"Addr.City"}),
	)

	// the same through a typed nil pointer
	c := &store.Customer{ID: 9}
	assertTree(t,
		map[string]any{"ID": int64(9), "Address": map[string]any{"City": nil, "Zip": nil}},
		tree(t, c, []string{"ID", "Address.City", "Address.Zip"}),
	)
}

func TestProject_LeafBranchConflict(t *testing.T) {
	src := projection.Record{"A": projection.Record{"B": 2}}

	t.Run("leaf then branch", func(t *testing.T) {
		for range 20 {
			assertTree(t,
				map[string]any{"A": map[string]any{"B": 2}},
				tree(t, src, []string{"A", "A.B"}),
			)
		}
	})

	t.Run("branch then leaf", func(t *testing.T) {
		for range 20 {
			assertTree(t,
				map[string]any{"A": projection.Record{"B": 2}},
				tree(t, src, []string{"A.B", "A"}),
			)
		}
	})

	t.Run("key keeps its first position", func(t *testing.T) {
		node := projection.Project(src, []string{"A", "Z", "A.B"}).(*projection.Node)
		assert.Equal(t, []string{"A", "Z"}, node.Keys())
	})
}

func TestProject_DuplicatePaths(t *testing.T) {
	node := projection.Project(projection.Record{"A": 1}, []string{"A", "A"}).(*projection.Node)
	assert.Equal(t, []string{"A"}, node.Keys())
	assert.Equal(t, map[string]any{"A": 1}, node.Interface())
}

func TestProject_InsertionOrder(t *testing.T) {
	c := customers()[0]

	node := projection.Project(c, []string{"FirstName", "Address.Zip", "ID", "Address.City"}).(*projection.Node)
	assert.Equal(t, []string{"FirstName", "Address", "ID"}, node.Keys())

	addr, ok := node.Get("Address")
	require.True(t, ok)
	assert.Equal(t, []string{"Zip", "City"}, addr.Keys())
}

func TestProject_MalformedPathsLenient(t *testing.T) {
	assertTree(t,
		map[string]any{"A": map[string]any{"": map[string]any{"B": nil}}},
		tree(t, projection.Record{"A": projection.Record{"B": 1}}, []string{"A..B"}),
	)

	assertTree(t, map[string]any{"": nil}, tree(t, projection.Record{"A": 1}, []string{""}))
}

func TestProject_DoesNotMutateSource(t *testing.T) {
	src := projection.Record{"A": projection.Record{"B": 1}, "C": 2}
	snapshot := spew.Sdump(src)

	_ = projection.Project(src, []string{"A", "A.B", "C.D", "E"})

	assert.Equal(t, snapshot, spew.Sdump(src))
}

func TestProjector_ReduceMode(t *testing.T) {
	p := projection.New(projection.WithMode(projection.ModeReduce))
	assert.Equal(t, projection.ModeReduce, p.Mode())

	v, err := p.Project(customers()[0], nil)
	require.NoError(t, err)

	node, ok := v.(*projection.Node)
	require.True(t, ok)
	assert.Zero(t, node.Len())

	out, err := projection.ProjectListWith(p, customers(), nil)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.IsType(t, &projection.Node{}, out[0])
}

func TestProjector_StrictPaths(t *testing.T) {
	p := projection.New(projection.WithStrictPaths(true))

	for _, bad := range []string{"", "A..B", ".A", "A."} {
		_, err := p.Project(projection.Record{"A": 1}, []string{"A", bad})
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, projection.ErrInvalidPath), err)
	}

	_, err := projection.ProjectListWith(p, []projection.Record{{"A": 1}, {"A": 2}}, []string{"A.."})
	require.ErrorIs(t, err, projection.ErrInvalidPath)
	assert.Contains(t, err.Error(), "element 0")

	v, err := p.Project(projection.Record{"A": 1}, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"A": 1}, v.(*projection.Node).Interface())
}

func TestProjector_NormalizedNames(t *testing.T) {
	p := projection.New(projection.WithNormalizedNames(true))

	v, err := p.Project(customers()[0], []string{"first_name", "address.city"})
	require.NoError(t, err)

	assertTree(t,
		map[string]any{"first_name": "Ada", "address": map[string]any{"city": "London"}},
		v.(*projection.Node).Interface(),
	)

	assert.Equal(t, "London", p.GetPropertyValue(customers()[0], "ADDRESS.CITY"))
	assert.Nil(t, projection.GetPropertyValue(customers()[0], "ADDRESS.CITY"))
}

func TestProjector_LogsConflicts(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := projection.New(projection.WithLogger(logger))

	_, err := p.Project(projection.Record{}, []string{"A", "A.B", "C.D", "C", "E..F"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "replacing leaf with branch")
	assert.Contains(t, out, "replacing branch with leaf")
	assert.Contains(t, out, "resolving malformed path as absent")
}

func TestProjector_NilLoggerDiscards(t *testing.T) {
	p := projection.New(projection.WithLogger(nil))

	_, err := p.Project(projection.Record{}, []string{"A", "A.B"})
	require.NoError(t, err)
}

func TestProjector_ConcurrentUse(t *testing.T) {
	p := projection.New()
	list := customers()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			out, err := projection.ProjectListWith(p, list, []string{"ID", "Address.City"})
			assert.NoError(t, err)
			assert.Len(t, out, len(list))
		}()
	}

	wg.Wait()
}

func TestGetPropertyValue(t *testing.T) {
	c := customers()[0]

	assert.Equal(t, "London", projection.GetPropertyValue(c, "Address.City"))
	assert.Nil(t, projection.GetPropertyValue(c, "Address.Nope"))
	assert.Nil(t, projection.GetPropertyValue(customers()[1], "Address.City"))
	assert.Nil(t, projection.GetPropertyValue(nil, "ID"))

	v, found := projection.Resolve(customers()[1], "Address")
	assert.True(t, found)
	assert.Nil(t, v)
}

func TestParseMode(t *testing.T) {
	for _, m := range []projection.Mode{projection.ModePassThrough, projection.ModeReduce} {
		parsed, err := projection.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	m, err := projection.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, projection.ModePassThrough, m)

	_, err = projection.ParseMode("identity")
	require.Error(t, err)
}
