package validate

import "fmt"

// requestJSON — запрос на создание заказа одной строкой.
func requestJSON(agentID, item string) string {
	return fmt.Sprintf(`{"agent_id":%q,"item":%q}`, agentID, item)
}
