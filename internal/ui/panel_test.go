package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", OneLine("a\nb   c", 0))
	assert.Equal(t, "abcdefg", OneLine("abcdefg", 7))
	assert.Equal(t, "abc...", OneLine("abcdefg", 6))
}

func TestFormatCreated(t *testing.T) {
	ts := time.Date(2026, 10, 18, 15, 4, 0, 0, time.Local)
	assert.Equal(t, "Oct 18, 2026, 03:04 PM", FormatCreated(ts, "Jan 2, 2006, 03:04 PM"))
}

func TestItemsPanelMono(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	items := []model.Item{
		{ID: "1", Title: "Buy milk", Description: "2% milk", CreatedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local)},
	}
	out := ItemsPanel(items, "2006-01-02")

	assert.Contains(t, out, "+")
	assert.Contains(t, out, "Total 1")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "2% milk")
	assert.Contains(t, out, "Created: 2026-10-18")
}

func TestItemsPanelEmpty(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	assert.Contains(t, ItemsPanel(nil, "2006-01-02"), "no items")
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	assert.Equal(t, "✔ added\n✖ boom\n", buf.String())
}

func TestUnknownThemeFallsBack(t *testing.T) {
	SetTheme("solarized")
	t.Cleanup(func() { SetTheme("classic") })
	assert.Equal(t, "classic", Current().Name)
}
