package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, CategoryPersonal, c)

	c, err = ParseCategory("Work")
	require.NoError(t, err)
	assert.Equal(t, CategoryWork, c)

	_, err = ParseCategory("all")
	assert.True(t, IsValidation(err))
}

func TestNoteTitle(t *testing.T) {
	assert.Equal(t, UntitledNote, NoteTitle("   "))
	assert.Equal(t, "Ideas", NoteTitle(" Ideas "))
}

func TestValidateNoteText(t *testing.T) {
	_, err := ValidateNoteText(" \n ")
	assert.True(t, IsValidation(err))

	text, err := ValidateNoteText(" hello ")
	require.NoError(t, err)
	assert.Equal(t, " hello ", text)
}

func TestNote_Validate(t *testing.T) {
	assert.NoError(t, Note{ID: "1", Text: "x"}.Validate())
	assert.Error(t, Note{Text: "x"}.Validate())
	assert.Error(t, Note{ID: "1", Text: " "}.Validate())
	assert.Error(t, Note{ID: "1", Text: "x", Category: "misc"}.Validate())
}

func TestID_UnmarshalJSON(t *testing.T) {
	var note Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":1718000000000,"text":"x"}`), &note))
	assert.Equal(t, ID("1718000000000"), note.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc","text":"x"}`), &note))
	assert.Equal(t, ID("abc"), note.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &note))
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
