package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/effects/observe"
	"github.com/Zachkp/portfolio/internal/effects/parallax"
)

type fakeDoc struct {
	behavior string
	sets     int
}

func (d *fakeDoc) ScrollBehavior() string { return d.behavior }
func (d *fakeDoc) SetScrollBehavior(s string) {
	d.behavior = s
	d.sets++
}

func testLayout() Layout {
	return Layout{
		Sections: []observe.Section{
			{ID: "about", Top: 800, Height: 800},
			{ID: "skills", Top: 1600, Height: 800},
			{ID: "contact", Top: 4000, Height: 800},
		},
		Layers: []parallax.Layer{{ID: "orb", Depth: 0.5}, {ID: "logo", Depth: 0.9}},
	}
}

func newMounted(t *testing.T, opts Options) (*View, *fakeDoc) {
	t.Helper()
	v, err := New([]string{"AI Engineer", "LLM Engineer", "Go Developer"}, testLayout(), opts, nil)
	require.NoError(t, err)
	doc := &fakeDoc{behavior: "auto"}
	require.NoError(t, v.Mount(doc, observe.Viewport{Width: 1000, Height: 800}))
	return v, doc
}

func TestNew_RequiresTitles(t *testing.T) {
	_, err := New(nil, testLayout(), DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestMount_SmoothScrollScopedToMount(t *testing.T) {
	v, doc := newMounted(t, DefaultOptions())
	assert.Equal(t, SmoothScroll, doc.behavior)
	assert.NotEmpty(t, v.ID())

	v.Close()
	assert.Equal(t, "auto", doc.behavior)

	// Second close does not touch the document again.
	sets := doc.sets
	v.Close()
	assert.Equal(t, sets, doc.sets)

	assert.ErrorIs(t, v.Mount(doc, observe.Viewport{}), ErrClosed)
}

func TestClose_ReleasesSubscriptions(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	calls := 0
	v.Subscribe(KindScroll, func(Event) { calls++ })
	require.Equal(t, 5, v.Subscriptions())

	v.Dispatch(Scroll{Y: 10})
	require.Equal(t, 1, calls)

	v.Close()
	assert.Zero(t, v.Subscriptions())

	v.Dispatch(Scroll{Y: 500})
	assert.Equal(t, 1, calls, "no handler runs after close")
	assert.False(t, v.Scrolled())

	unsub := v.Subscribe(KindScroll, func(Event) { calls++ })
	unsub()
	assert.Zero(t, v.Subscriptions())
}

func TestUnsubscribe(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	defer v.Close()
	calls := 0
	unsub := v.Subscribe(KindPointer, func(Event) { calls++ })
	v.Dispatch(PointerMove{})
	unsub()
	v.Dispatch(PointerMove{})
	assert.Equal(t, 1, calls)
}

func TestScroll_HeaderThreshold(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	defer v.Close()

	v.Dispatch(Scroll{Y: 40})
	assert.False(t, v.Scrolled())
	v.Dispatch(Scroll{Y: 41})
	assert.True(t, v.Scrolled())
	v.Dispatch(Scroll{Y: 0})
	assert.False(t, v.Scrolled())
}

func TestScroll_RevealAndActive(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	defer v.Close()

	st := v.Snapshot()
	assert.False(t, st.Revealed["about"], "about starts below the fold")
	assert.Empty(t, st.Active)

	v.Dispatch(Scroll{Y: 800})
	assert.True(t, v.Revealed("about"))
	assert.Equal(t, "about", v.Active())

	v.Dispatch(Scroll{Y: 1600})
	assert.Equal(t, "skills", v.Active())

	// Back to the very top: about stays revealed, skills stays active.
	v.Dispatch(Scroll{Y: 0})
	assert.True(t, v.Revealed("about"))
	assert.True(t, v.Revealed("skills"))
	assert.False(t, v.Revealed("contact"))
	assert.Equal(t, "skills", v.Active())
}

func TestScroll_TallSectionBecomesActive(t *testing.T) {
	v, err := New([]string{"AI Engineer"}, Layout{Sections: []observe.Section{
		{ID: "about", Top: 800, Height: 600},
		{ID: "projects", Top: 1400, Height: 2400},
		{ID: "contact", Top: 3800, Height: 600},
	}}, DefaultOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, v.Mount(&fakeDoc{}, observe.Viewport{Width: 1200, Height: 800}))
	defer v.Close()

	v.Dispatch(Scroll{Y: 800})
	assert.Equal(t, "about", v.Active())

	for y := 1200.0; y <= 2800; y += 400 {
		v.Dispatch(Scroll{Y: y})
		assert.Equal(t, "projects", v.Active(), "scrollY=%v", y)
		assert.True(t, v.Revealed("projects"))
	}
}

func TestSetLayout_Reobserves(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	defer v.Close()
	require.False(t, v.Revealed("contact"))

	l := testLayout()
	l.Sections[2].Top = 100
	v.SetLayout(l)
	assert.True(t, v.Revealed("contact"))

	v.Close()
	v.SetLayout(testLayout())
	assert.True(t, v.Snapshot().Closed)
}

func TestFailOpen_WithoutObservation(t *testing.T) {
	opts := DefaultOptions()
	opts.Observable = false
	v, _ := newMounted(t, opts)
	defer v.Close()

	st := v.Snapshot()
	assert.False(t, st.Observable)
	for id, shown := range st.Revealed {
		assert.True(t, shown, id)
	}
}

func TestPointer_Parallax(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	defer v.Close()

	v.Dispatch(PointerMove{Pointer: parallax.Pointer{X: 500, Y: 400}})
	st := v.Snapshot()
	for id, tr := range st.Transforms {
		assert.Equal(t, parallax.Transform{}, tr, id)
	}
	assert.Equal(t, parallax.Pointer{X: 436, Y: 336}, st.Glow)

	v.Dispatch(PointerMove{Pointer: parallax.Pointer{X: 1000, Y: 800}})
	st = v.Snapshot()
	assert.InDelta(t, 0.5*0.9*12, st.Transforms["logo"].TX, 1e-9)
	assert.InDelta(t, 0.5*0.5*3, st.Transforms["orb"].RotateY, 1e-9)
}

func TestTick_TypewriterAndCaret(t *testing.T) {
	v, _ := newMounted(t, DefaultOptions())
	defer v.Close()

	for i := 0; i < 4; i++ {
		v.Dispatch(Tick{Elapsed: 50 * time.Millisecond})
	}
	st := v.Snapshot()
	assert.Equal(t, "AI", st.Typed)
	assert.True(t, st.Caret)

	v.Dispatch(Tick{Elapsed: 300 * time.Millisecond})
	st = v.Snapshot()
	assert.Equal(t, "AI En", st.Typed)
	assert.False(t, st.Caret)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pointer", KindPointer.String())
	assert.Equal(t, "tick", KindTick.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
