package keyboard

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttons(n int) []models.InlineKeyboardButton {
	result := make([]models.InlineKeyboardButton, n)
	for i := range result {
		result[i] = Button(string(rune('a'+i)), string(rune('a'+i)))
	}
	return result
}

func TestBuilder_Grid(t *testing.T) {
	kb := NewBuilder().Grid(3, buttons(7)...).Build()

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 3)
	assert.Len(t, kb.InlineKeyboard[1], 3)
	assert.Len(t, kb.InlineKeyboard[2], 1)
	assert.Equal(t, "g", kb.InlineKeyboard[2][0].CallbackData)
}

func TestBuilder_Row(t *testing.T) {
	kb := NewBuilder().
		Row().
		Row(Button("Yes", "yes"), Button("No", "no")).
		Grid(0, buttons(2)...).
		Build()

	require.Len(t, kb.InlineKeyboard, 3, "empty row skipped, zero width grid is one per row")
	assert.Equal(t, "Yes", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "no", kb.InlineKeyboard[0][1].CallbackData)
}
