package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmarques/centavo/internal/importer"
)

func TestMapping_Assign(t *testing.T) {
	t.Run("MoveFieldUnsetsPreviousColumn", func(t *testing.T) {
		m := importer.NewMapping()

		m.Assign(0, importer.FieldAmount)
		m.Assign(2, importer.FieldAmount)

		_, ok := m.Field(0)
		assert.False(t, ok)

		f, ok := m.Field(2)
		assert.True(t, ok)
		assert.Equal(t, importer.FieldAmount, f)
		assert.Equal(t, 1, m.Progress())
	})

	t.Run("SkipUnsetsColumn", func(t *testing.T) {
		m := importer.NewMapping()

		m.Assign(1, importer.FieldDate)
		m.Assign(1, importer.FieldSkip)

		_, ok := m.Field(1)
		assert.False(t, ok)
		assert.Equal(t, 0, m.Progress())
	})

	t.Run("EmptyFieldUnsetsColumn", func(t *testing.T) {
		m := importer.NewMapping()

		m.Assign(1, importer.FieldDate)
		m.Assign(1, importer.Field(""))

		_, ok := m.Field(1)
		assert.False(t, ok)
	})

	t.Run("ReassignSameColumnIsNoOp", func(t *testing.T) {
		m := importer.NewMapping()

		m.Assign(3, importer.FieldPayee)
		m.Assign(3, importer.FieldPayee)

		f, ok := m.Field(3)
		assert.True(t, ok)
		assert.Equal(t, importer.FieldPayee, f)
		assert.Equal(t, 1, m.Progress())
	})

	t.Run("OverwriteColumnWithDifferentField", func(t *testing.T) {
		m := importer.NewMapping()

		m.Assign(0, importer.FieldAmount)
		m.Assign(0, importer.FieldDate)

		f, ok := m.Field(0)
		assert.True(t, ok)
		assert.Equal(t, importer.FieldDate, f)

		_, ok = m.Column(importer.FieldAmount)
		assert.False(t, ok)
	})
}

func TestMapping_Column(t *testing.T) {
	m := importer.NewMapping()

	m.Assign(4, importer.FieldNotes)

	col, ok := m.Column(importer.FieldNotes)
	assert.True(t, ok)
	assert.Equal(t, 4, col)

	_, ok = m.Column(importer.FieldAmount)
	assert.False(t, ok)
}

func TestMapping_Progress(t *testing.T) {
	m := importer.NewMapping()
	assert.Equal(t, 0, m.Progress())

	m.Assign(0, importer.FieldAmount)
	m.Assign(1, importer.FieldDate)
	m.Assign(2, importer.FieldPayee)
	assert.Equal(t, 3, m.Progress())

	m.Assign(1, importer.FieldSkip)
	assert.Equal(t, 2, m.Progress())
}
