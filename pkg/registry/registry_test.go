package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/rule"
	"digital.vasic.exercises/pkg/verify"
)

// newTestModule builds a trivial module that always passes.
func newTestModule(id exercise.ID) exercise.VerificationModule {
	return verify.NewModule(id, string(id), "", []rule.Rule{
		{Name: "present", Conditions: []rule.Condition{
			{Type: "not_empty"},
		}},
	})
}

func TestDefaultRegistry_Resolve_CachesModule(t *testing.T) {
	reg := NewRegistry()
	var loads int32

	require.NoError(t, reg.RegisterLoader("ex-1", func() (
		exercise.VerificationModule, error,
	) {
		atomic.AddInt32(&loads, 1)
		return newTestModule("ex-1"), nil
	}))

	first, err := reg.Resolve("ex-1")
	require.NoError(t, err)
	second, err := reg.Resolve("ex-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))

	stats := reg.Stats()
	assert.Equal(t, 1, stats.TotalRegistered)
	assert.Equal(t, 1, stats.TotalLoaded)
	assert.Equal(t, 1, stats.CacheHits)
	assert.Equal(t, 1, stats.CacheMisses)
}

func TestDefaultRegistry_Resolve_EmptyID(t *testing.T) {
	reg := NewRegistry()

	m, err := reg.Resolve("")

	require.Error(t, err)
	require.NotNil(t, m)
	assert.Empty(t, m.Run("blob").Results)
}

func TestDefaultRegistry_Resolve_UnknownGetsSentinel(t *testing.T) {
	reg := NewRegistry()

	m, err := reg.Resolve("ex-unknown")

	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "no verification available", m.Name())

	set := m.Run("anything")
	require.NotNil(t, set)
	assert.Empty(t, set.Results)
}

func TestDefaultRegistry_Resolve_LoaderErrorGetsSentinel(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterLoader("ex-broken", func() (
		exercise.VerificationModule, error,
	) {
		return nil, fmt.Errorf("syntax error in module")
	}))

	m, err := reg.Resolve("ex-broken")

	require.NoError(t, err)
	assert.Equal(t, "no verification available", m.Name())

	// Failed loads are not cached: a later successful load
	// must become visible.
	stats := reg.Stats()
	assert.Equal(t, 0, stats.TotalLoaded)
}

func TestDefaultRegistry_Resolve_LegacyNamingFallback(t *testing.T) {
	reg := NewRegistry()

	// Registered only under the legacy prefixed convention.
	require.NoError(t, reg.RegisterLoader(
		"verify-ex-legacy", func() (
			exercise.VerificationModule, error,
		) {
			return newTestModule("ex-legacy"), nil
		},
	))

	m, err := reg.Resolve("ex-legacy")

	require.NoError(t, err)
	assert.Equal(t, exercise.ID("ex-legacy"), m.ID())
}

func TestDefaultRegistry_Resolve_UnderscoreFallback(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterLoader(
		"ex_snake_case", func() (
			exercise.VerificationModule, error,
		) {
			return newTestModule("ex_snake_case"), nil
		},
	))

	m, err := reg.Resolve("ex-snake-case")

	require.NoError(t, err)
	assert.Equal(t, exercise.ID("ex_snake_case"), m.ID())
}

func TestDefaultRegistry_Resolve_DeduplicatesConcurrentLoads(t *testing.T) {
	reg := NewRegistry()
	var loads int32

	require.NoError(t, reg.RegisterLoader("ex-slow", func() (
		exercise.VerificationModule, error,
	) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(50 * time.Millisecond)
		return newTestModule("ex-slow"), nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := reg.Resolve("ex-slow")
			assert.NoError(t, err)
			assert.NotNil(t, m)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestDefaultRegistry_Invalidate_ForcesReload(t *testing.T) {
	reg := NewRegistry()
	var loads int32

	require.NoError(t, reg.RegisterLoader("ex-1", func() (
		exercise.VerificationModule, error,
	) {
		atomic.AddInt32(&loads, 1)
		return newTestModule("ex-1"), nil
	}))

	_, err := reg.Resolve("ex-1")
	require.NoError(t, err)

	reg.Invalidate("ex-1")

	_, err = reg.Resolve("ex-1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
	assert.Equal(t, 2, reg.Stats().TotalLoaded)
}

func TestDefaultRegistry_RegisterLoader_Validation(t *testing.T) {
	reg := NewRegistry()

	err := reg.RegisterLoader("", func() (
		exercise.VerificationModule, error,
	) {
		return nil, nil
	})
	require.Error(t, err)

	err = reg.RegisterLoader("ex-1", nil)
	require.Error(t, err)

	require.NoError(t, reg.RegisterLoader("ex-1", func() (
		exercise.VerificationModule, error,
	) {
		return newTestModule("ex-1"), nil
	}))
	err = reg.RegisterLoader("ex-1", func() (
		exercise.VerificationModule, error,
	) {
		return newTestModule("ex-1"), nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDefaultRegistry_RegisterDefinition_Resolves(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterDefinition(
		&exercise.Definition{
			ID:   "ex-def",
			Name: "Definition backed",
			Rules: []exercise.RuleDef{
				{
					Name: "has code",
					Conditions: []exercise.ConditionDef{
						{Type: "not_empty"},
					},
				},
			},
		},
	))

	m, err := reg.Resolve("ex-def")
	require.NoError(t, err)

	set := m.Run("function f(){}")
	require.Len(t, set.Results, 1)
	assert.True(t, set.AllPassed())
}

func TestDefaultRegistry_RegisterDefinition_Nil(t *testing.T) {
	reg := NewRegistry()

	require.Error(t, reg.RegisterDefinition(nil))
}

func TestDefaultRegistry_CountAndClear(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterLoader("ex-1", func() (
		exercise.VerificationModule, error,
	) {
		return newTestModule("ex-1"), nil
	}))
	assert.Equal(t, 1, reg.Count())

	_, err := reg.Resolve("ex-1")
	require.NoError(t, err)

	reg.Clear()

	assert.Equal(t, 0, reg.Count())
	assert.Equal(t, Stats{}, reg.Stats())
}

func TestSentinel_RunIsEmptyAndNonNil(t *testing.T) {
	m := Sentinel("ex-any")

	set := m.Run("blob")

	require.NotNil(t, set)
	assert.Equal(t, exercise.ID("ex-any"), set.ExerciseID)
	assert.NotNil(t, set.Results)
	assert.Empty(t, set.Results)
	assert.True(t, set.AllPassed())
}
