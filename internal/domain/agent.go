package domain

// AgentReply — ответ агента на пересланное сообщение, без интерпретации статуса.
type AgentReply struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK — агент ответил 2xx.
func (r *AgentReply) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}
