package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.00 KB", Human(1<<10))
	assert.Equal(t, "2.50 MB", Human(5<<20/2))
	assert.Equal(t, "1.00 GB", Human(1<<30))
}
