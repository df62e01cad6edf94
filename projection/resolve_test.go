package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projector/store"
)

type inner struct {
	Name string
}

type outerWithPtr struct {
	*inner
	Visible string
	hidden  string
}

type countingReader struct {
	props map[string]any
	calls int
}

func (c *countingReader) Property(name string) (any, bool) {
	c.calls++
	v, ok := c.props[name]

	return v, ok
}

func sampleCustomer() *store.Customer {
	return &store.Customer{
		Audit:     store.Audit{CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		ID:        7,
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address: &store.Address{
			Street: "12 St James's Square",
			City:   "London",
			Zip:    "SW1Y",
		},
		Tags: []string{"vip"},
	}
}

func TestResolve_Struct(t *testing.T) {
	c := sampleCustomer()
	r := resolver{}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"ID", int64(7), true},
		{"Address.City", "London", true},
		{"FullName", "Ada Lovelace", true},                          // getter
		{"CreatedAt.Year", 2024, true},                              // getter on a field value
		{"Audit.CreatedAt", c.CreatedAt, true},                      // embedded field by name
		{"CreatedAt", c.CreatedAt, true},                            // promoted field
		{"Address.Geo", nil, true},                                  // typed nil normalized
		{"Address.Geo.Lat", nil, false},                             // nil intermediate
		{"Missing", nil, false},                                     // unknown property
		{"Address.Missing", nil, false},                             // unknown nested property
		{"SetPassword", nil, false},                                 // takes an argument
		{"passwordHash", nil, false},                                // unexported
		{"Tags.Length", nil, false},                                 // slices have no properties
		{"Address..City", nil, false},                               // empty segment
		{"", nil, false},                                            // empty path
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, found := r.resolve(c, ParsePath(tt.path))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_StructValue(t *testing.T) {
	c := *sampleCustomer()

	got, found := resolver{}.resolve(c, ParsePath("FullName"))
	require.True(t, found)
	assert.Equal(t, "Ada Lovelace", got)

	got, found = resolver{}.resolve(c, ParsePath("Address.Zip"))
	require.True(t, found)
	assert.Equal(t, "SW1Y", got)
}

func TestResolve_NilSource(t *testing.T) {
	var c *store.Customer

	_, found := resolver{}.resolve(c, ParsePath("ID"))
	assert.False(t, found)

	_, found = resolver{}.resolve(nil, ParsePath("ID"))
	assert.False(t, found)
}

func TestResolve_NilEmbeddedPointer(t *testing.T) {
	o := outerWithPtr{Visible: "yes", hidden: "no"}

	got, found := resolver{}.resolve(o, ParsePath("Visible"))
	assert.True(t, found)
	assert.Equal(t, "yes", got)

	got, found = resolver{}.resolve(o, ParsePath("Name"))
	assert.True(t, found, "promoted through a nil embedded pointer resolves to nil")
	assert.Nil(t, got)

	_, found = resolver{}.resolve(o, ParsePath("hidden"))
	assert.False(t, found)

	o.inner = &inner{Name: "inner"}
	got, _ = resolver{}.resolve(o, ParsePath("Name"))
	assert.Equal(t, "inner", got)
}

func TestResolve_Maps(t *testing.T) {
	type labels map[string]int

	doc := map[string]any{
		"name": "doc",
		"meta": map[string]any{"owner": nil, "labels": labels{"a": 1}},
		"rec":  Record{"x": 1.5},
		"ids":  map[int]string{1: "one"},
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"name", "doc", true},
		{"meta.owner", nil, true},
		{"meta.owner.name", nil, false},
		{"meta.labels.a", 1, true},
		{"meta.labels.b", nil, false},
		{"rec.x", 1.5, true},
		{"ids.1", nil, false}, // non-string keys are not properties
		{"Name", nil, false},  // exact names by default
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, found := resolver{}.resolve(doc, ParsePath(tt.path))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_PropertyReaderIsAuthoritative(t *testing.T) {
	reader := &countingReader{props: map[string]any{"a": Record{"b": 2}}}

	got, found := resolver{}.resolve(reader, ParsePath("a.b"))
	require.True(t, found)
	assert.Equal(t, 2, got)

	// the reader's own fields are not consulted on a miss
	_, found = resolver{normalized: true}.resolve(reader, ParsePath("props"))
	assert.False(t, found)
	assert.Equal(t, 2, reader.calls)
}

func TestResolve_Normalized(t *testing.T) {
	r := resolver{normalized: true}
	c := sampleCustomer()

	tests := []struct {
		path string
		want any
	}{
		{"first_name", "Ada"},
		{"address.city", "London"},
		{"full_name", "Ada Lovelace"},
		{"created_at.year", 2024},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, found := r.resolve(c, ParsePath(tt.path))
			require.True(t, found)
			assert.Equal(t, tt.want, got)
		})
	}

	doc := Record{"zip_code": "1", "ZipCode": "2"}

	got, found := r.resolve(doc, ParsePath("zipCode"))
	require.True(t, found)
	assert.Equal(t, "2", got, "sorted keys make the match deterministic")

	got, found = r.resolve(doc, ParsePath("zip_code"))
	require.True(t, found)
	assert.Equal(t, "1", got, "exact names win")
}

func TestIsNil(t *testing.T) {
	var (
		p  *store.Customer
		m  map[string]any
		s  []int
		fn func()
		i  any
	)

	assert.True(t, isNil(nil))
	assert.True(t, isNil(p))
	assert.True(t, isNil(m))
	assert.True(t, isNil(s))
	assert.True(t, isNil(fn))
	assert.True(t, isNil(i))
	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil(store.Customer{}))
}
