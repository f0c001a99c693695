// README: Verification checklist tests.
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistRequiresAllFive(t *testing.T) {
	list := Checklist{}
	assert.False(t, list.FullyVerified())

	for i, item := range CheckItems {
		list[item] = true
		if i < len(CheckItems)-1 {
			assert.False(t, list.FullyVerified(), "incomplete checklist must not verify")
		}
	}
	assert.True(t, list.FullyVerified())
}

func TestChecklistUndoReopens(t *testing.T) {
	list := Checklist{}
	for _, item := range CheckItems {
		list[item] = true
	}
	assert.True(t, list.FullyVerified())

	list[CheckCamera] = false
	assert.False(t, list.FullyVerified())
}

func TestValidCheckItem(t *testing.T) {
	for _, item := range CheckItems {
		assert.True(t, ValidCheckItem(item))
	}
	assert.False(t, ValidCheckItem(CheckItem("keyboard")))
}
