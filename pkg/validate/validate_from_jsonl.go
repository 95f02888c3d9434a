package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// LineError — ошибка конкретной строки (нумерация с 1).
type LineError struct {
	Line int
	Err  error
}

// ScanJSONL — читает JSONL, проверяет каждую непустую строку и отдаёт валидные запросы в fn.
// Невалидные строки пропускаются и передаются в onInvalid (может быть nil).
// Ошибка fn прерывает чтение.
func ScanJSONL(
	ctx context.Context,
	validator ports.OrderValidator,
	ir io.Reader,
	fn func(line int, req *domain.CreateOrderRequest) error,
	onInvalid func(LineError),
) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue
		}

		req, err := CreateRequestFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			if onInvalid != nil {
				onInvalid(LineError{Line: line, Err: err})
			}
			continue
		}
		if err := fn(line, req); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// ValidateJSONLStream — валидные строки пишутся в writer канонически, одной строкой каждая.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	return ScanJSONL(ctx, validator, ir, func(_ int, req *domain.CreateOrderRequest) error {
		return writeCanonical(ow, req)
	}, nil)
}

func writeCanonical(ow io.Writer, req *domain.CreateOrderRequest) error {
	marshal, _ := json.Marshal(req) // маршалим в компактный JSON
	if _, err := ow.Write(marshal); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	if _, err := ow.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}
