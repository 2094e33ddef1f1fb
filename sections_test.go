package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	ids := Sections()
	require.Len(t, ids, 8)
	assert.Equal(t, []SectionID{"home", "about", "skills", "projects", "experience", "education", "contact", "resume"}, ids)

	ids[0] = "mutated"
	assert.Equal(t, SectionHome, Sections()[0], "Sections must return a copy")

	assert.Equal(t, "Experience", SectionExperience.Label())
	assert.Equal(t, "#contact", SectionContact.Anchor())
	assert.Equal(t, 3, SectionProjects.Index())
	assert.Equal(t, -1, SectionID("blog").Index())
	assert.False(t, SectionID("").Valid())
}

func TestTracker_InitialState(t *testing.T) {
	tr := NewTracker(nil)
	assert.Equal(t, SectionHome, tr.Active())
	assert.True(t, tr.Active().Valid())
}

func TestTracker_Observe(t *testing.T) {
	t.Run("section_at_threshold_becomes_active", func(t *testing.T) {
		tr := NewTracker(nil)
		tr.Observe([]IntersectionEntry{{ID: SectionSkills, IsIntersecting: true, Ratio: 0.5}})
		assert.Equal(t, SectionSkills, tr.Active())
	})

	t.Run("below_threshold_is_ignored", func(t *testing.T) {
		tr := NewTracker(nil)
		tr.Observe([]IntersectionEntry{{ID: SectionSkills, IsIntersecting: true, Ratio: 0.49}})
		assert.Equal(t, SectionHome, tr.Active())
	})

	t.Run("non_intersecting_is_ignored", func(t *testing.T) {
		tr := NewTracker(nil)
		tr.Observe([]IntersectionEntry{{ID: SectionAbout, IsIntersecting: false, Ratio: 0.9}})
		assert.Equal(t, SectionHome, tr.Active())
	})

	t.Run("unknown_ids_never_become_active", func(t *testing.T) {
		tr := NewTracker(nil)
		tr.Observe([]IntersectionEntry{
			{ID: "footer", IsIntersecting: true, Ratio: 1},
			{ID: "", IsIntersecting: true, Ratio: 1},
		})
		assert.Equal(t, SectionHome, tr.Active())
	})

	t.Run("tie_goes_to_topmost_in_document_order", func(t *testing.T) {
		tr := NewTracker(nil)
		tr.Observe([]IntersectionEntry{
			{ID: SectionEducation, IsIntersecting: true, Ratio: 0.8},
			{ID: SectionExperience, IsIntersecting: true, Ratio: 0.6},
		})
		assert.Equal(t, SectionExperience, tr.Active())
	})

	t.Run("empty_batch_keeps_state", func(t *testing.T) {
		tr := NewTracker(nil)
		tr.Observe([]IntersectionEntry{{ID: SectionResume, IsIntersecting: true, Ratio: 1}})
		tr.Observe(nil)
		assert.Equal(t, SectionResume, tr.Active())
	})
}

func TestTracker_OnChange(t *testing.T) {
	tr := NewTracker(nil)
	var seen []SectionID
	remove := tr.OnChange(func(id SectionID) { seen = append(seen, id) })

	tr.Observe([]IntersectionEntry{{ID: SectionAbout, IsIntersecting: true, Ratio: 1}})
	tr.Observe([]IntersectionEntry{{ID: SectionAbout, IsIntersecting: true, Ratio: 0.7}})
	tr.Observe([]IntersectionEntry{{ID: SectionSkills, IsIntersecting: true, Ratio: 0.7}})
	remove()
	tr.Observe([]IntersectionEntry{{ID: SectionContact, IsIntersecting: true, Ratio: 0.7}})

	assert.Equal(t, []SectionID{SectionAbout, SectionSkills}, seen)
	assert.Equal(t, SectionContact, tr.Active())
}

func TestTracker_OnChange_RegistrationOrder(t *testing.T) {
	tr := NewTracker(nil)
	var order []int
	for i := 0; i < 8; i++ {
		tr.OnChange(func(SectionID) { order = append(order, i) })
	}
	removeMiddle := tr.OnChange(func(SectionID) { order = append(order, 99) })
	tr.OnChange(func(SectionID) { order = append(order, 8) })
	removeMiddle()

	tr.Observe([]IntersectionEntry{{ID: SectionAbout, IsIntersecting: true, Ratio: 1}})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, order)
}

func TestTracker_Mount(t *testing.T) {
	t.Run("observes_every_section_and_disconnects", func(t *testing.T) {
		var obs *mockObserver
		tr := NewTracker(nil)
		dispose := tr.Mount(mockObserverFactory(&obs))
		require.NotNil(t, obs)

		assert.Equal(t, VisibilityThreshold, obs.threshold)
		assert.Equal(t, Sections(), obs.observed)

		obs.emit(IntersectionEntry{ID: SectionProjects, IsIntersecting: true, Ratio: 0.9})
		assert.Equal(t, SectionProjects, tr.Active())

		dispose()
		assert.True(t, obs.disconnected)

		obs.emit(IntersectionEntry{ID: SectionResume, IsIntersecting: true, Ratio: 0.9})
		assert.Equal(t, SectionProjects, tr.Active(), "entries after dispose must be ignored")

		dispose()
	})

	t.Run("nil_factory_degrades_to_initial_state", func(t *testing.T) {
		tr := NewTracker(nil)
		dispose := tr.Mount(nil)
		require.NotNil(t, dispose)
		dispose()
		assert.Equal(t, SectionHome, tr.Active())
	})

	t.Run("unsupported_observer_degrades_to_initial_state", func(t *testing.T) {
		tr := NewTracker(nil)
		dispose := tr.Mount(func(float64, func([]IntersectionEntry)) (IntersectionObserver, error) {
			return nil, ErrObserverUnsupported
		})
		dispose()
		assert.Equal(t, SectionHome, tr.Active())
	})
}

func TestTracker_WithViewport(t *testing.T) {
	heights := map[SectionID]float64{}
	for _, id := range Sections() {
		heights[id] = 1000
	}
	heights[SectionProjects] = 600
	// Layout: skills 2000-3000, projects 3000-3600, experience 3600-4600.
	vp := NewViewport(StackedLayout(1280, heights), 1280, 1000)

	tr := NewTracker(nil)
	dispose := tr.Mount(vp.Factory())
	defer dispose()

	vp.ScrollTo(0)
	assert.Equal(t, SectionHome, tr.Active())

	// Projects fills 60% of the viewport; skills shows 30%, experience 10%.
	vp.ScrollTo(2700)
	assert.InDelta(t, 1.0, vp.Ratio(SectionProjects), 1e-9)
	assert.InDelta(t, 0.3, vp.Ratio(SectionSkills), 1e-9)
	assert.InDelta(t, 0.1, vp.Ratio(SectionExperience), 1e-9)
	assert.Equal(t, SectionProjects, tr.Active())

	vp.ScrollTo(4100)
	assert.Equal(t, SectionExperience, tr.Active())
}
