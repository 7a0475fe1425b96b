package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

// record is the wire shape: createdAt as an ISO-8601 string with milliseconds.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// WriteJSON writes items as an indented JSON array. An empty collection is [].
func WriteJSON(w io.Writer, items []model.Item) error {
	out := make([]record, 0, len(items))
	for _, it := range items {
		out = append(out, record{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			CreatedAt:   it.CreatedISO(),
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
