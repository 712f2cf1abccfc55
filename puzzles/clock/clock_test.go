package clock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlesolver/bfs"
	"github.com/katalvlaran/puzzlesolver/puzzles/clock"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name                 string
		hours, current, goal int
	}{
		{"ZeroHours", 0, 1, 1},
		{"StartTooLow", 12, 0, 3},
		{"StartTooHigh", 12, 13, 3},
		{"GoalTooHigh", 12, 3, 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := clock.New(tc.hours, tc.current, tc.goal)
			require.ErrorIs(t, err, clock.ErrInvalidClock)
		})
	}
}

func TestParse(t *testing.T) {
	s, err := clock.Parse([]string{"12", "6", "12"})
	require.NoError(t, err)
	require.Equal(t, 12, s.Hours())
	require.Equal(t, 6, s.Current())
	require.Equal(t, 12, s.Goal())

	_, err = clock.Parse([]string{"12", "6"})
	require.ErrorIs(t, err, clock.ErrInvalidClock)
	_, err = clock.Parse([]string{"12", "six", "1"})
	require.ErrorIs(t, err, clock.ErrInvalidClock)
}

func TestNeighbors_Wrap(t *testing.T) {
	s, _ := clock.New(12, 12, 1)
	n := s.Neighbors()
	require.Len(t, n, 2)
	require.Equal(t, 1, n[0].Current())
	require.Equal(t, 11, n[1].Current())

	s, _ = clock.New(12, 1, 5)
	n = s.Neighbors()
	require.Equal(t, 2, n[0].Current())
	require.Equal(t, 12, n[1].Current())
	require.Equal(t, 1, s.Current(), "receiver must not change")
}

// TestSolve_HalfDial is the 12-hour clock from 6 to 12: six moves either
// way, every reading on the dial.
func TestSolve_HalfDial(t *testing.T) {
	start, err := clock.New(12, 6, 12)
	require.NoError(t, err)

	res, err := bfs.Solve(start)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.LessOrEqual(t, res.Steps(), 6)
	require.Equal(t, 6, res.Steps())
	for _, s := range res.Path {
		require.GreaterOrEqual(t, s.Current(), 1)
		require.LessOrEqual(t, s.Current(), 12)
	}
	require.Equal(t, 12, res.Path[len(res.Path)-1].Current())
	require.Equal(t, 12, res.Unique)
	require.GreaterOrEqual(t, res.Generated, res.Unique)
}

// TestSolve_Backward picks the shorter backward route.
func TestSolve_Backward(t *testing.T) {
	start, _ := clock.New(12, 3, 1)
	res, err := bfs.Solve(start)
	require.NoError(t, err)

	var hours []int
	for _, s := range res.Path {
		hours = append(hours, s.Current())
	}
	require.Equal(t, []int{3, 2, 1}, hours)
}

func TestSolve_AlreadySolved(t *testing.T) {
	start, _ := clock.New(60, 17, 17)
	res, err := bfs.Solve(start)
	require.NoError(t, err)
	require.Len(t, res.Path, 1)
	require.Equal(t, 1, res.Unique)
}

// TestSolve_EqualStarts solves from two distinct but equal start values.
func TestSolve_EqualStarts(t *testing.T) {
	a, _ := clock.New(24, 5, 20)
	b, _ := clock.New(24, 5, 20)
	ra, err := bfs.Solve(a)
	require.NoError(t, err)
	rb, err := bfs.Solve(b)
	require.NoError(t, err)
	require.Equal(t, ra.Steps(), rb.Steps())
	require.Equal(t, 9, ra.Steps())
}

func TestOneHourClock(t *testing.T) {
	s, err := clock.New(1, 1, 1)
	require.NoError(t, err)
	require.True(t, s.IsGoal())
	for _, n := range s.Neighbors() {
		require.Equal(t, 1, n.Current())
	}
}
