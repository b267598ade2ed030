package todo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeState_LegacyTextField(t *testing.T) {
	s, err := DecodeState([]byte(`{"tasks":[{"id":5,"text":"Legacy"}]}`))
	require.NoError(t, err)

	require.Len(t, s.Tasks, 1)
	assert.Equal(t, int64(5), s.Tasks[0].ID)
	assert.Equal(t, "Legacy", s.Tasks[0].Title)
}

func TestDecodeState_TitleWinsOverText(t *testing.T) {
	s, err := DecodeState([]byte(`{"tasks":[{"id":5,"title":"New","text":"Old"}]}`))
	require.NoError(t, err)

	assert.Equal(t, "New", s.Tasks[0].Title)
}

func TestDecodeState_AbsentFieldDefaults(t *testing.T) {
	s, err := DecodeState([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, s.Tasks)
	assert.Equal(t, []string{"Personal", "Work"}, s.Lists)
	assert.Equal(t, "Personal", s.ActiveList)
	assert.Equal(t, FilterAll, s.Filter)
}

func TestDecodeState_EmptyListsStayEmpty(t *testing.T) {
	s, err := DecodeState([]byte(`{"lists":[]}`))
	require.NoError(t, err)

	assert.Empty(t, s.Lists, "an explicitly empty lists array is not defaulted")
}

func TestDecodeState_EmptyListsSurviveRoundTrip(t *testing.T) {
	s := DefaultState()
	s.Lists = []string{}
	s.ActiveList = ""

	data, err := EncodeState(s)
	require.NoError(t, err)
	got, err := DecodeState(data)
	require.NoError(t, err)

	assert.Empty(t, got.Lists, "deleting every list must hold across reload")
}

func TestDecodeState_NullActiveListDefaults(t *testing.T) {
	s, err := DecodeState([]byte(`{"activeList":null,"lists":["X"]}`))
	require.NoError(t, err)

	assert.Equal(t, "Personal", s.ActiveList)
	assert.Equal(t, []string{"X"}, s.Lists)
}

func TestDecodeState_SubtasksNeverNil(t *testing.T) {
	s, err := DecodeState([]byte(`{"tasks":[{"id":1,"title":"t"}]}`))
	require.NoError(t, err)

	assert.NotNil(t, s.Tasks[0].Subtasks)
}

func TestDecodeState_Corrupt(t *testing.T) {
	_, err := DecodeState([]byte(`{"tasks":`))
	assert.Error(t, err)
}

func TestEncodeState_GlobalViewMarshalsNull(t *testing.T) {
	s := DefaultState()
	s.ActiveList = ""

	data, err := EncodeState(s)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"activeList":null`)
}

func TestEncodeState_DropsLegacyField(t *testing.T) {
	s, err := DecodeState([]byte(`{"tasks":[{"id":5,"text":"Legacy"}]}`))
	require.NoError(t, err)

	data, err := EncodeState(s)
	require.NoError(t, err)

	assert.False(t, strings.Contains(string(data), `"text"`), "legacy field must not round-trip")
	assert.Contains(t, string(data), `"title":"Legacy"`)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := DefaultState()
	s.Tasks = []Task{{
		ID:       1,
		Title:    "round trip",
		List:     "Personal",
		DueDate:  datePtr("2030-01-01"),
		Reminded: true,
		Subtasks: []Subtask{{ID: 2, Title: "child", Completed: true}},
	}}
	s.Filter = FilterActive

	data, err := EncodeState(s)
	require.NoError(t, err)
	got, err := DecodeState(data)
	require.NoError(t, err)

	assert.Equal(t, s.Tasks, got.Tasks)
	assert.Equal(t, s.Lists, got.Lists)
	assert.Equal(t, s.ActiveList, got.ActiveList)
	assert.Equal(t, s.Filter, got.Filter)
}
