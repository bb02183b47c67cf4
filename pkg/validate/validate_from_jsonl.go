package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Yotrages/exquisite-wears/internal/ports"
)

// maxLineErrors — сколько ошибок по строкам держим в JSONLResult.
const maxLineErrors = 100

// LineError — отклонённая строка потока (нумерация с 1).
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	Errors            []LineError // первые maxLineErrors отказов
}

func (r *JSONLResult) reject(n int, err error) {
	r.InvalidLinesCount++
	if len(r.Errors) < maxLineErrors {
		r.Errors = append(r.Errors, LineError{Line: n, Err: err})
	}
}

// ValidateJSONLStream — поток позиций корзины, по одной на строку.
// Валидные позиции пишутся в writer в каноническом виде; повтор productId отклоняется,
// как и в слоте. Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.LineValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	enc := json.NewEncoder(ow)
	seen := make(map[string]int)

	for n := 1; scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		line, err := ValidateLineFromJSON(ctx, validator, raw)
		if err != nil {
			res.reject(n, err)
			continue
		}
		if first, dup := seen[line.ProductID]; dup {
			res.reject(n, fmt.Errorf("%w: повтор productId %q (строка %d)", ErrInvalidLine, line.ProductID, first))
			continue
		}
		seen[line.ProductID] = n

		if err := enc.Encode(line); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
