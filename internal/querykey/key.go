// Package querykey — реестр ключей запросов к кэшу.
//
// Ключ — упорядоченная последовательность типизированных сегментов.
// Сравнение и префиксный поиск идут по каноническому представлению сегмента,
// в котором тип сохраняется: Detail(5) и Detail("5") — разные ключи.
package querykey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

// Key — ключ запроса.
type Key []any

// String — каноническое представление ключа, используется как ключ хранения в кэше.
func (k Key) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, seg := range k {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(encodeSegment(seg))
	}
	b.WriteByte(']')
	return b.String()
}

// HasPrefix — все сегменты prefix совпадают с первыми сегментами k.
// Пустой префикс совпадает с любым ключом.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if encodeSegment(k[i]) != encodeSegment(prefix[i]) {
			return false
		}
	}
	return true
}

// Equal — ключи совпадают посегментно.
func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}

// encodeSegment — типизированное представление сегмента.
// Все целые кодируются одинаково (#5), строки — в кавычках ("5").
func encodeSegment(seg any) string {
	switch v := seg.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case int:
		return "#" + strconv.FormatInt(int64(v), 10)
	case int32:
		return "#" + strconv.FormatInt(int64(v), 10)
	case int64:
		return "#" + strconv.FormatInt(v, 10)
	case uint:
		return "#" + strconv.FormatUint(uint64(v), 10)
	case uint32:
		return "#" + strconv.FormatUint(uint64(v), 10)
	case uint64:
		return "#" + strconv.FormatUint(v, 10)
	case float64:
		return "#" + strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case domain.OrderFilters:
		return "{agent_id:" + strconv.Quote(v.AgentID) + "}"
	case *domain.OrderFilters:
		if v == nil {
			return "null"
		}
		return encodeSegment(*v)
	default:
		return fmt.Sprintf("%T(%v)", seg, seg)
	}
}
