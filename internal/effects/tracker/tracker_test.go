package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zachkp/portfolio/internal/effects/observe"
)

func TestTracker_SingleIntersecting(t *testing.T) {
	tr := New(DefaultOptions())
	changed := tr.Observe([]observe.Entry{{ID: "skills", Ratio: 0.5, Intersecting: true}})
	assert.True(t, changed)
	assert.Equal(t, "skills", tr.Active())
}

func TestTracker_RetainsLastActive(t *testing.T) {
	tr := New(DefaultOptions())
	tr.Observe([]observe.Entry{{ID: "about", Ratio: 0.6, Intersecting: true}})
	assert.Equal(t, "about", tr.Active())

	changed := tr.Observe([]observe.Entry{{ID: "about", Ratio: 0, Intersecting: false}})
	assert.False(t, changed)
	assert.Equal(t, "about", tr.Active())
}

func TestTracker_LastReportedWins(t *testing.T) {
	tr := New(DefaultOptions())
	tr.Observe([]observe.Entry{
		{ID: "skills", Ratio: 0.9, Intersecting: true},
		{ID: "projects", Ratio: 0.4, Intersecting: true},
	})
	assert.Equal(t, "projects", tr.Active())
}

func TestTracker_IntersectingBelowThreshold(t *testing.T) {
	tr := New(DefaultOptions())
	tr.Observe([]observe.Entry{{ID: "contact", Ratio: 0.2, Intersecting: true}})
	assert.Equal(t, "contact", tr.Active())
}

func TestTracker_SectionTallerThanViewport(t *testing.T) {
	tr := New(DefaultOptions())
	vp := observe.Viewport{Width: 1200, Height: 800}
	// Band is 240px to 560px below the scroll offset. projects can never
	// have more than 320/2400 of itself inside it.
	sections := []observe.Section{
		{ID: "about", Top: 800, Height: 600},
		{ID: "projects", Top: 1400, Height: 2400},
		{ID: "contact", Top: 3800, Height: 600},
	}

	vp.ScrollY = 800
	tr.Update(vp, sections)
	assert.Equal(t, "about", tr.Active())

	for y := 1200.0; y <= 2800; y += 200 {
		vp.ScrollY = y
		tr.Update(vp, sections)
		assert.Equal(t, "projects", tr.Active(), "scrollY=%v", y)
	}

	vp.ScrollY = 3700
	tr.Update(vp, sections)
	assert.Equal(t, "contact", tr.Active())
}

func TestTracker_UpdateWithGeometry(t *testing.T) {
	tr := New(DefaultOptions())
	vp := observe.Viewport{Width: 1000, Height: 1000}
	// Band is y in [300, 700].
	sections := []observe.Section{
		{ID: "about", Top: 0, Height: 1000},
		{ID: "skills", Top: 1000, Height: 600},
	}

	tr.Update(vp, sections)
	// about covers the band but only 40% of about is inside it.
	assert.Equal(t, "about", tr.Active())

	vp.ScrollY = 1000
	tr.Update(vp, sections)
	assert.Equal(t, "skills", tr.Active())

	// Scroll far past both: nothing intersects, skills stays.
	vp.ScrollY = 5000
	tr.Update(vp, sections)
	assert.Equal(t, "skills", tr.Active())
	tr.Release()
}
