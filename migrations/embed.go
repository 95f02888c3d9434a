// Package migrations — SQL-миграции схемы заказов (goose), встроенные в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
