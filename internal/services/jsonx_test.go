package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject_FencedReply(t *testing.T) {
	raw := "Sure! ```json\n{\"score\": 85, \"feedback\": [\"x\"]}\n```"

	obj, err := ExtractObject(raw)
	require.NoError(t, err)

	assert.Equal(t, float64(85), obj["score"])
	assert.Equal(t, []any{"x"}, obj["feedback"])
}

func TestExtractObject_ProseWrapped(t *testing.T) {
	raw := "Here is the analysis you asked for: {\"score\": 42, \"feedback\": []} hope it helps!"

	obj, err := ExtractObject(raw)
	require.NoError(t, err)

	assert.Equal(t, float64(42), obj["score"])
}

func TestExtractObject_ExtraFieldsPassThrough(t *testing.T) {
	obj, err := ExtractObject(`{"score": 10, "feedback": ["a"], "confidence": "low"}`)
	require.NoError(t, err)

	assert.Equal(t, "low", obj["confidence"])
}

func TestExtractObject_NoBraces(t *testing.T) {
	_, err := ExtractObject("I could not produce a score for this resume.")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractObject_MalformedCandidate(t *testing.T) {
	_, err := ExtractObject("{score: not json at all}")
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestExtractObject_MultipleObjectsStayUndefined(t *testing.T) {
	// The greedy first-{-to-last-} span covers both objects; the parse of
	// that span fails rather than silently picking one of them.
	_, err := ExtractObject(`{"score": 1} {"score": 2}`)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedJSON))
}
