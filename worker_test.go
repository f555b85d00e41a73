package factotum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type badgeWorker struct {
	Identity
}

func (badgeWorker) Work() error { return nil }

func TestWorker_Identity(t *testing.T) {
	id := NewIdentity("Greta")

	assert.Equal(t, "Greta", id.Name(), "Expected the name back from Name")
	assert.Equal(t, "Greta", id.String(), "Expected String to read as the name")
}

func TestWorker_EmbeddedIdentity(t *testing.T) {
	w := badgeWorker{Identity: NewIdentity("Sam")}

	// Embedding Identity is what grants the Worker capability.
	var admitted Worker = w
	assert.Equal(t, "Sam", admitted.Name(), "Expected the embedded name to surface")
}

func TestWorker_ZeroIdentity(t *testing.T) {
	var id Identity

	assert.Equal(t, "", id.Name(), "A zero Identity has an empty name")
}
