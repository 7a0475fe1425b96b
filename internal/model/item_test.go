package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		field string
	}{
		{"complete", Draft{Title: "Buy milk", Description: "2% milk"}, ""},
		{"missing title", Draft{Description: "2% milk"}, "title"},
		{"missing description", Draft{Title: "Buy milk"}, "description"},
		{"both missing", Draft{}, "title"},
		{"whitespace only", Draft{Title: "  ", Description: "\t"}.Normalize(), "title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			var fe *FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, tc.field+" is required", err.Error())
		})
	}
}

func TestDraftNormalize(t *testing.T) {
	d := Draft{Title: "  Buy milk ", Description: "\n2% milk\n"}.Normalize()
	assert.Equal(t, Draft{Title: "Buy milk", Description: "2% milk"}, d)
}

func TestCreatedISO(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	it := Item{CreatedAt: time.Date(2026, 10, 18, 10, 30, 0, 0, loc)}
	assert.Equal(t, "2026-10-18T09:30:00.000Z", it.CreatedISO())
}
