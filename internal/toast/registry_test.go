package toast

import (
	"testing"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustColor(t *testing.T, s string) style.Color {
	t.Helper()
	c, err := style.ParseColor(s)
	require.NoError(t, err)
	return c
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{name: "brand", valid: true},
		{name: "Brand_2", valid: true},
		{name: "a-b-c", valid: true},
		{name: "x", valid: true},
		{name: "", valid: false},
		{name: "2fast", valid: false},
		{name: "_hidden", valid: false},
		{name: "has space", valid: false},
		{name: "semi;colon", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkName(tt.name)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidName)
			}
		})
	}
}

func TestTypeBuilderValidation(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.NewTypeBuilder("9lives", mustColor(t, "#000"))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = r.NewTypeBuilder("brand", style.Color{})
	assert.ErrorIs(t, err, ErrMissingColor)

	_, err = r.NewProgressBarTypeBuilder("bar")
	assert.ErrorIs(t, err, ErrMissingColor)

	_, err = r.NewProgressBarTypeBuilder("bar", mustColor(t, "#fff"), style.Color{})
	assert.ErrorIs(t, err, ErrMissingColor)

	_, err = r.NewProgressBarTypeBuilder("-bar", mustColor(t, "#fff"))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestTypeBuilderShortCircuitsToDefaults(t *testing.T) {
	injector := newCountingInjector()
	r := NewRegistry(injector)

	b, err := r.NewTypeBuilder("success", mustColor(t, "#000000"))
	require.NoError(t, err)
	assert.Equal(t, TypeSuccess, b.Build())

	pb, err := r.NewProgressBarTypeBuilder("rainbow", mustColor(t, "#000000"))
	require.NoError(t, err)
	assert.Equal(t, ProgressBarRainbow, pb.Build())

	assert.Empty(t, injector.calls, "built-in variants need no injection")
}

func TestTypeBuilderInjectsOnce(t *testing.T) {
	injector := newCountingInjector()
	r := NewRegistry(injector)

	b1, err := r.NewTypeBuilderWithColor("brand", mustColor(t, "#fff"), mustColor(t, "#336699"))
	require.NoError(t, err)
	first := b1.Build()

	b2, err := r.NewTypeBuilder("brand", mustColor(t, "#000"))
	require.NoError(t, err)
	second := b2.Build()
	again := b1.Build()

	assert.Same(t, first.(*CustomType), second.(*CustomType))
	assert.Same(t, first.(*CustomType), again.(*CustomType))
	assert.True(t, first.(*CustomType).Injected())
	assert.Equal(t, 1, injector.calls["toast-type-brand"])
	assert.Equal(t, mustColor(t, "#336699"), first.BackgroundColor(), "first registration wins")

	rule, ok := injector.sheet.Lookup("toast-type-brand")
	require.True(t, ok)
	assert.Contains(t, rule.Content, ".toast.toast-brand{background-color:rgba(51,102,153,1)}")
	assert.Contains(t, rule.Content, "{color:rgba(255,255,255,1)}")
}

func TestProgressBarBuilderInjectsGradient(t *testing.T) {
	injector := newCountingInjector()
	r := NewRegistry(injector)

	b, err := r.NewProgressBarTypeBuilder("sunset", mustColor(t, "#ff0000"), mustColor(t, "#0000ff"))
	require.NoError(t, err)
	p := b.Build()
	b.Build()

	require.IsType(t, &CustomProgressBarType{}, p)
	assert.Len(t, p.Colors(), 2)
	assert.Equal(t, 1, injector.calls["toast-progress-bar-sunset"])
	rule, ok := injector.sheet.Lookup("toast-progress-bar-sunset")
	require.True(t, ok)
	assert.Contains(t, rule.Content, "linear-gradient(to right,rgba(255,0,0,1),rgba(0,0,255,1))")

	single, err := r.NewProgressBarTypeBuilder("flat", mustColor(t, "#00ff00"))
	require.NoError(t, err)
	single.Build()
	rule, _ = injector.sheet.Lookup("toast-progress-bar-flat")
	assert.Contains(t, rule.Content, "{background:rgba(0,255,0,1)}")
}

func TestRegistryLookupAndResolve(t *testing.T) {
	r := NewRegistry(nil)
	b, err := r.NewTypeBuilder("brand", mustColor(t, "#abcdef"))
	require.NoError(t, err)
	brand := b.Build()

	got, ok := r.LookupType("brand")
	require.True(t, ok)
	assert.Equal(t, brand, got)
	got, ok = r.LookupType("error")
	require.True(t, ok)
	assert.Equal(t, TypeError, got)
	_, ok = r.LookupType("nope")
	assert.False(t, ok)

	assert.Equal(t, brand, r.ResolveType(brand))
	assert.Equal(t, TypeInfo, r.ResolveType(TypeInfo))
	assert.Equal(t, TypeDefault, r.ResolveType(DefaultType("bogus")))
	assert.Equal(t, TypeDefault, r.ResolveType(nil))

	// An entry from another registry is not known here.
	other := NewRegistry(nil)
	ob, err := other.NewTypeBuilder("brand", mustColor(t, "#abcdef"))
	require.NoError(t, err)
	assert.Equal(t, TypeDefault, r.ResolveType(ob.Build()))

	assert.True(t, r.RemoveType("brand"))
	assert.False(t, r.RemoveType("brand"))
	assert.Equal(t, TypeDefault, r.ResolveType(brand))
}

func TestRegistryProgressBarResolve(t *testing.T) {
	r := NewRegistry(nil)
	b, err := r.NewProgressBarTypeBuilder("stripes", mustColor(t, "#111"), mustColor(t, "#222"))
	require.NoError(t, err)
	stripes := b.Build()

	got, ok := r.LookupProgressBarType("stripes")
	require.True(t, ok)
	assert.Equal(t, stripes, got)
	assert.Equal(t, ProgressBarWarning, r.ResolveProgressBarType(ProgressBarWarning))
	assert.Equal(t, ProgressBarDefault, r.ResolveProgressBarType(nil))

	assert.True(t, r.RemoveProgressBarType("stripes"))
	assert.Equal(t, ProgressBarDefault, r.ResolveProgressBarType(stripes))
	_, ok = r.LookupProgressBarType("stripes")
	assert.False(t, ok)
}

func TestDefaultVariants(t *testing.T) {
	for _, dt := range DefaultTypes {
		assert.True(t, dt.IsValid(), dt)
		assert.False(t, dt.Color().IsZero(), dt)
		assert.False(t, dt.BackgroundColor().IsZero(), dt)
		assert.Equal(t, string(dt), dt.Name())
	}
	assert.Len(t, ProgressBarRainbow.Colors(), 5)
	assert.False(t, DefaultProgressBarType("plaid").IsValid())
}
