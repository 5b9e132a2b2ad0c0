package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/state"
)

func fixedClock(date string) func() time.Time {
	d, err := time.Parse(state.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}

// tickingClock lets tests move the real calendar forward.
type tickingClock struct {
	t time.Time
}

func (c *tickingClock) now() time.Time { return c.t }

func (c *tickingClock) advanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(config.Default(), fixedClock("2026-08-31"))
	// the opening event may stage a muse offer; settle it so tests start
	// from the intro scene
	if e.State().PendingMuse != nil {
		_, err := e.Dispatch("decline_muse", nil)
		require.NoError(t, err)
	}
	e.State().ScenarioID = sceneIntro
	return e
}

// steady pins stats to a mid band so rollovers trigger neither passives nor
// terminal floors while a test exercises something else.
func steady(e *Engine) {
	for _, s := range state.AllStats {
		e.State().Stats[s] = 60
	}
}

func TestFreshEngineDefaults(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()

	assert.Equal(t, 1, st.Day)
	assert.Equal(t, 10, st.ActionPoints)
	assert.Equal(t, 10, st.MaxActionPoints)
	assert.True(t, st.DailyEventTriggered, "opening rollover must have run")
	assert.NotEmpty(t, e.Choices())
}

func TestDispatchUnknownAction(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Dispatch("paint_the_moon", nil)
	require.Error(t, err)
	_, isRule := AsRule(err)
	assert.False(t, isRule, "unknown actions are programmer errors, not rejections")
}

func TestDispatchSceneGating(t *testing.T) {
	e := newTestEngine(t)
	e.State().ScenarioID = sceneIntro

	_, err := e.Dispatch("gather_paints", nil)
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidTarget, re.Kind)
	assert.Equal(t, 10, e.State().ActionPoints, "rejected before any point was spent")
}

func TestBuildInsufficientResourceThenSuccess(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()
	steady(e)
	st.Resources[state.ResourceInspiration] = 10
	st.Resources[state.ResourceReputation] = 5

	_, err := e.Dispatch("open_facilities", nil)
	require.NoError(t, err)

	_, err = e.Dispatch("build", map[string]any{"facility": "sketchbook"})
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindInsufficientResource, re.Kind)
	assert.NotEmpty(t, re.Message)
	assert.Equal(t, 10, st.Resources[state.ResourceInspiration], "failed spend must not move resources")
	assert.Equal(t, 5, st.Resources[state.ResourceReputation])
	assert.False(t, st.Facilities[state.FacilitySketchbook].Built)
	assert.Equal(t, 9, st.ActionPoints, "the focus point stays spent on a failed build")

	// credit the materials and retry
	st.Resources[state.ResourceInspiration] = 60
	st.Resources[state.ResourceReputation] = 25

	res, err := e.Dispatch("build", map[string]any{"facility": "sketchbook"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Message)
	assert.True(t, st.Facilities[state.FacilitySketchbook].Built)
	assert.Equal(t, 100, st.Facilities[state.FacilitySketchbook].Durability)
	assert.Equal(t, 10, st.Resources[state.ResourceInspiration], "deducts exactly 50")
	assert.Equal(t, 5, st.Resources[state.ResourceReputation], "deducts exactly 20")
}

func TestBuildAlreadyBuiltIsRejected(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	e.State().Facilities[state.FacilityCanvas].Built = true
	_, err := e.Dispatch("open_facilities", nil)
	require.NoError(t, err)

	_, err = e.Dispatch("build", map[string]any{"facility": "canvas"})
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidTarget, re.Kind)
	assert.Equal(t, 100, e.State().Facilities[state.FacilityCanvas].Durability)
}

func TestGalleryRequiresCanvas(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	st := e.State()
	st.Resources[state.ResourceReputation] = 200
	st.Resources[state.ResourceFragments] = 10

	_, err := e.Dispatch("open_facilities", nil)
	require.NoError(t, err)

	_, err = e.Dispatch("build", map[string]any{"facility": "gallery"})
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidTarget, re.Kind)
	assert.Equal(t, 200, st.Resources[state.ResourceReputation], "rejected before spending")

	st.Facilities[state.FacilityCanvas].Built = true
	_, err = e.Dispatch("build", map[string]any{"facility": "gallery"})
	require.NoError(t, err)
	assert.True(t, st.Facilities[state.FacilityGallery].Built)
	assert.Equal(t, 50, st.Resources[state.ResourceReputation])
	assert.Equal(t, 5, st.Resources[state.ResourceFragments])
}

func TestActionPointsExhaustion(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	st := e.State()

	for i := 0; i < 10; i++ {
		require.Equal(t, sceneIntro, st.ScenarioID)
		_, err := e.Dispatch("conceptualize", nil)
		require.NoError(t, err, "dispatch %d", i)
		assert.GreaterOrEqual(t, st.ActionPoints, 0)
		assert.LessOrEqual(t, st.ActionPoints, st.MaxActionPoints)
	}
	assert.Equal(t, 0, st.ActionPoints)

	_, err := e.Dispatch("conceptualize", nil)
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindInsufficientFocus, re.Kind)
	assert.Equal(t, 0, st.ActionPoints)
}

func TestExhibitionOncePerDayIsFree(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	st := e.State()

	_, err := e.Dispatch("exhibition", nil)
	require.NoError(t, err)
	assert.True(t, st.Flags.HeldExhibition)
	assert.Equal(t, 9, st.ActionPoints)

	_, err = e.Dispatch("exhibition", nil)
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindDailyLimitReached, re.Kind)
	assert.Equal(t, 9, st.ActionPoints, "a daily-limit rejection costs nothing")
}

func TestCommuneMarksMuseAndExhaustsRoster(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	st := e.State()
	require.Len(t, st.Muses, 2)

	_, err := e.Dispatch("commune", nil)
	require.NoError(t, err)
	require.Len(t, st.Flags.CommunedWith, 1)

	_, err = e.Dispatch("commune", nil)
	require.NoError(t, err)
	require.Len(t, st.Flags.CommunedWith, 2)
	assert.NotEqual(t, st.Flags.CommunedWith[0], st.Flags.CommunedWith[1])

	_, err = e.Dispatch("commune", nil)
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindDailyLimitReached, re.Kind)
}

func TestAcceptMuse(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()
	st.PendingMuse = &state.Muse{ID: "echo", Name: "Echo", Skill: state.SkillStory, Connection: 40}
	st.ScenarioID = sceneMuseOffer

	res, err := e.Dispatch("accept_muse", nil)
	require.NoError(t, err)
	assert.Contains(t, res.Message, "Echo")
	assert.Len(t, st.Muses, 3)
	assert.Nil(t, st.PendingMuse)
	assert.Equal(t, sceneIntro, st.ScenarioID)
}

func TestAcceptMuseFullRoster(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()
	for len(st.Muses) < st.MaxMuses {
		st.Muses = append(st.Muses, state.Muse{ID: "extra", Name: "Extra", Skill: state.SkillDance})
	}
	st.PendingMuse = &state.Muse{ID: "echo", Name: "Echo"}
	st.ScenarioID = sceneMuseOffer

	_, err := e.Dispatch("accept_muse", nil)
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidTarget, re.Kind)
	assert.Len(t, st.Muses, st.MaxMuses)
}

func TestDeclineMuse(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()
	st.PendingMuse = &state.Muse{ID: "echo", Name: "Echo"}
	st.ScenarioID = sceneMuseOffer

	_, err := e.Dispatch("decline_muse", nil)
	require.NoError(t, err)
	assert.Nil(t, st.PendingMuse)
	assert.Len(t, st.Muses, 2)
}

func TestDeterministicReplay(t *testing.T) {
	script := []struct {
		action string
		params map[string]any
	}{
		{"conceptualize", nil},
		{"commune", nil},
		{"open_resources", nil},
		{"gather_paints", nil},
		{"gather_inspiration", nil},
		{"back", nil},
		{"exhibition", nil},
	}

	run := func() []byte {
		e := New(config.Default(), fixedClock("2026-08-31"))
		if e.State().PendingMuse != nil {
			if _, err := e.Dispatch("decline_muse", nil); err != nil {
				t.Fatalf("decline pending muse: %v", err)
			}
		}
		for _, step := range script {
			if _, err := e.Dispatch(step.action, step.params); err != nil {
				t.Fatalf("dispatch %s: %v", step.action, err)
			}
		}
		data, err := e.Snapshot()
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, string(run()), string(run()), "identical clock and choices must replay identically")
}

func TestTerminalBlocksDispatch(t *testing.T) {
	e := newTestEngine(t)
	e.State().ScenarioID = sceneOverHarmony

	_, err := e.Dispatch("conceptualize", nil)
	re, ok := AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindTerminalState, re.Kind)

	_, err = e.ManualAdvance()
	re, ok = AsRule(err)
	require.True(t, ok)
	assert.Equal(t, KindTerminalState, re.Kind)

	assert.Empty(t, e.Choices(), "terminal scenarios offer no actions")
}

func TestResetLeavesTerminal(t *testing.T) {
	e := newTestEngine(t)
	e.State().ScenarioID = sceneOverResources

	res := e.Reset()
	assert.Equal(t, 1, e.State().Day)
	assert.False(t, e.Terminal())
	assert.NotEmpty(t, res.Choices)
}

func TestFacilityChoicesFilterBuilt(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()
	st.ScenarioID = sceneFacilities

	// gallery hidden until canvas exists
	for _, c := range e.Choices() {
		if c.Action == "build" {
			assert.NotEqual(t, "gallery", c.Params["facility"])
		}
	}

	st.Facilities[state.FacilityCanvas].Built = true
	st.Facilities[state.FacilityCanvas].Durability = 80

	var buildTargets []string
	sawMaintain := false
	for _, c := range e.Choices() {
		switch c.Action {
		case "build":
			buildTargets = append(buildTargets, c.Params["facility"].(string))
		case "maintain":
			sawMaintain = true
			assert.Equal(t, "canvas", c.Params["facility"])
		}
	}
	assert.NotContains(t, buildTargets, "canvas", "built works leave the build list")
	assert.Contains(t, buildTargets, "gallery")
	assert.True(t, sawMaintain, "damaged works offer restoration")
}

func TestMaintainRestoresDurability(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	st := e.State()
	st.Facilities[state.FacilitySketchbook].Built = true
	st.Facilities[state.FacilitySketchbook].Durability = 40
	st.Resources[state.ResourceInspiration] = 20
	st.Resources[state.ResourceReputation] = 20

	_, err := e.Dispatch("open_facilities", nil)
	require.NoError(t, err)
	_, err = e.Dispatch("maintain", map[string]any{"facility": "sketchbook"})
	require.NoError(t, err)

	assert.Equal(t, 100, st.Facilities[state.FacilitySketchbook].Durability)
	assert.Equal(t, 10, st.Resources[state.ResourceInspiration])
	assert.Equal(t, 10, st.Resources[state.ResourceReputation])
}

func TestLoadRestoresSnapshot(t *testing.T) {
	e := newTestEngine(t)
	steady(e)
	_, err := e.Dispatch("conceptualize", nil)
	require.NoError(t, err)
	data, err := e.Snapshot()
	require.NoError(t, err)

	restored, err := Load(config.Default(), fixedClock("2026-08-31"), data)
	require.NoError(t, err)
	assert.Equal(t, e.State(), restored.State())

	// same calendar day: no rollover fires
	_, rolled := restored.SyncDay()
	assert.False(t, rolled)
}
