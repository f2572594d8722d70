package group

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() NewGroupParams {
	return NewGroupParams{
		ID:         "g1",
		Name:       "Jardin A",
		GradeLevel: "jardin",
		Capacity:   15,
		TeacherID:  "t1",
	}
}

func TestNewGroup(t *testing.T) {
	g, err := NewGroup(validParams())
	require.NoError(t, err)

	assert.Equal(t, "Jardin A", g.Name)
	assert.Equal(t, LifecycleDraft, g.Lifecycle)
	assert.Equal(t, 15, g.Capacity)
}

func TestNewGroup_TrimsName(t *testing.T) {
	p := validParams()
	p.Name = "  Jardin A  "
	g, err := NewGroup(p)
	require.NoError(t, err)
	assert.Equal(t, "Jardin A", g.Name)
}

func TestNewGroup_CapacityBounds(t *testing.T) {
	p := validParams()

	p.Capacity = 0
	_, err := NewGroup(p)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	p.Capacity = 21
	_, err = NewGroup(p)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	p.Capacity = 1
	_, err = NewGroup(p)
	assert.NoError(t, err)

	p.Capacity = 20
	_, err = NewGroup(p)
	assert.NoError(t, err)
}

func TestNewGroup_Validation(t *testing.T) {
	p := validParams()
	p.Name = ""
	_, err := NewGroup(p)
	assert.ErrorIs(t, err, ErrInvalidName)

	p = validParams()
	p.Name = strings.Repeat("x", 101)
	_, err = NewGroup(p)
	assert.ErrorIs(t, err, ErrInvalidName)

	p = validParams()
	p.GradeLevel = ""
	_, err = NewGroup(p)
	assert.Error(t, err)

	p = validParams()
	p.TeacherID = ""
	_, err = NewGroup(p)
	assert.Error(t, err)
}

func TestGroup_Confirm(t *testing.T) {
	g, _ := NewGroup(validParams())

	require.NoError(t, g.Confirm(5))
	assert.Equal(t, LifecycleActive, g.Lifecycle)
}

func TestGroup_Confirm_RejectsEmpty(t *testing.T) {
	g, _ := NewGroup(validParams())

	assert.ErrorIs(t, g.Confirm(0), ErrEmptyGroup)
	assert.Equal(t, LifecycleDraft, g.Lifecycle)
}

func TestGroup_Retire(t *testing.T) {
	g, _ := NewGroup(validParams())
	require.NoError(t, g.Confirm(3))

	g.Retire()
	assert.Equal(t, LifecycleDraft, g.Lifecycle)
}

func TestGroup_HasRoomFor(t *testing.T) {
	g, _ := NewGroup(validParams()) // capacity 15

	assert.True(t, g.HasRoomFor(10, 5))
	assert.False(t, g.HasRoomFor(10, 6))
	assert.True(t, g.HasRoomFor(0, 15))
	assert.True(t, g.HasRoomFor(15, 0))
}
