package factotum

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffice_Name(t *testing.T) {
	o := NewOffice(Must(newPainter("Pia")))
	assert.Equal(t, "Pia", o.Name(), "Expected the staffing worker's name")
}

func TestOffice_Work(t *testing.T) {
	w := newPainter("Pia")
	h := Must(w)
	marker := &bytes.Buffer{}
	h.SetOutput(marker)

	require.NoError(t, NewOffice(h).Work("fence", 2))

	assert.Equal(t, "Pia is working on ", marker.String(),
		"Expected the office's announcement followed by the hand's marker")
	assert.Equal(t, "fence in 2 coats\n", w.Out.String(),
		"Expected the arguments forwarded unchanged")
}

func TestOffice_WorkForwardsErrors(t *testing.T) {
	h := Must(newPainter("Pia"))
	h.SetOutput(&bytes.Buffer{})

	err := NewOffice(h).Work("fence", "two")
	assert.ErrorIs(t, err, ErrTypeMismatch, "The office adds nothing to the hand's error contract")
}
