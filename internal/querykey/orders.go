package querykey

import "github.com/Gunvolt24/agent_orders/internal/domain"

const (
	scopeOrders = "orders"
	kindList    = "list"
	kindDetail  = "detail"
)

// Orders — ключи запросов сущности «заказ».
var Orders orderKeys

type orderKeys struct{}

// All — ["orders"]; префикс любого ключа заказов.
func (orderKeys) All() Key { return Key{scopeOrders} }

// Lists — ["orders","list"]; префикс всех списков.
func (orderKeys) Lists() Key { return Key{scopeOrders, kindList} }

// List — ["orders","list",filters]; без фильтров совпадает с Lists().
func (o orderKeys) List(filters *domain.OrderFilters) Key {
	if filters.IsZero() {
		return o.Lists()
	}
	return Key{scopeOrders, kindList, *filters}
}

// Detail — ["orders","detail",id]. Тип id не приводится.
func (orderKeys) Detail(id any) Key { return Key{scopeOrders, kindDetail, id} }
