package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"shopcart/internal/core/domain"
)

// DefaultFileName is the download name for an exported cart.
const DefaultFileName = "cart.json"

// Render returns the cart as a pretty-printed JSON array, the format shared
// by the file download and the clipboard copy. An empty cart renders as [].
func Render(items []domain.CartItem) ([]byte, error) {
	if items == nil {
		items = []domain.CartItem{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return out, nil
}

// WriteFile writes the rendered cart to path.
func WriteFile(items []domain.CartItem, path string) error {
	out, err := Render(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// CopyToClipboard places the rendered cart on the system clipboard. A denied
// or unavailable clipboard is a recoverable failure; cart state is unaffected.
func CopyToClipboard(items []domain.CartItem) error {
	out, err := Render(items)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(out)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
