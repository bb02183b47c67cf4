package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yotrages/exquisite-wears/internal/ports"
)

// InputFormat — формат входа для ValidateFile.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"  // по расширению: .jsonl → поток, иначе слот
	FormatJSON  InputFormat = "json"  // слот: JSON-массив позиций
	FormatJSONL InputFormat = "jsonl" // поток позиций, по одной на строку
)

// maxSlotBytes — слот корзины больше этого считаем повреждённым.
const maxSlotBytes = 16 << 20

// ValidateFile — проверяет файл слота или поток позиций и пишет канонический вывод в ow.
// Возвращает короткую сводку для человека.
func ValidateFile(ctx context.Context, validator ports.LineValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	if format == FormatAuto {
		format = FormatJSON
		if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
			format = FormatJSONL
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		return validateSlot(ctx, validator, file, ow)
	case FormatJSONL:
		res, err := ValidateJSONLStream(ctx, validator, file, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// validateSlot — слот целиком: одна плохая позиция делает недействительным весь слот,
// так же как при гидратации корзины.
func validateSlot(ctx context.Context, validator ports.LineValidator, r io.Reader, ow io.Writer) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxSlotBytes+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if len(raw) > maxSlotBytes {
		return "slot invalid", fmt.Errorf("%w: slot larger than %d bytes", ErrInvalidLine, maxSlotBytes)
	}

	lines, err := ValidateSlotFromJSON(ctx, validator, raw)
	if err != nil {
		return "slot invalid", err
	}
	if err := json.NewEncoder(ow).Encode(lines); err != nil {
		return "", fmt.Errorf("write json: %w", err)
	}
	return fmt.Sprintf("slot valid: %d lines", len(lines)), nil
}
