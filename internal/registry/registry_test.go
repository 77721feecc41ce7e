package registry

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/internal/config"
)

type fakeSolver struct {
	day   int
	scale int
}

func (f fakeSolver) Day() int      { return f.day }
func (f fakeSolver) Title() string { return "Fake " + strconv.Itoa(f.day) }
func (f fakeSolver) Solve(string) (Answers, error) {
	return Answers{Part1: strconv.Itoa(f.scale)}, nil
}

func fakeFactory(day int) Factory {
	return func(p config.DayParams) Solver {
		return fakeSolver{day: day, scale: p.Int("scale", 1)}
	}
}

// The registry is package global; tests use days outside 1..25 so they
// never collide with real registrations.
func TestRegisterCreateList(t *testing.T) {
	Register(902, fakeFactory(902))
	Register(901, fakeFactory(901))

	require.True(t, Exists(901))
	require.False(t, Exists(903))

	s, err := Create(901, config.DayParams{"scale": 7})
	require.NoError(t, err)
	ans, err := s.Solve("")
	require.NoError(t, err)
	assert.Equal(t, "7", ans.Part1)

	s, err = Create(902, nil)
	require.NoError(t, err)
	ans, _ = s.Solve("")
	assert.Equal(t, "1", ans.Part1)

	var got []DayInfo
	for _, info := range List() {
		if info.Day > 900 {
			got = append(got, info)
		}
	}
	assert.Equal(t, []DayInfo{{901, "Fake 901"}, {902, "Fake 902"}}, got)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create(999, nil)
	require.ErrorIs(t, err, ErrUnknownDay)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(910, fakeFactory(910))
	assert.Panics(t, func() { Register(910, fakeFactory(910)) })
}
