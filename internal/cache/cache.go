package cache

import (
	"strings"
	"sync"
)

// ResponseCache — кэш ответов процесса: ключ запроса -> готовый результат.
// Без TTL и ограничения размера: рабочий набор — несколько страниц списков,
// любая запись полностью сбрасывает кэш.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func New() *ResponseCache {
	return &ResponseCache{entries: make(map[string]any)}
}

// Key строит детерминированный ключ из имени операции и пар параметр=значение
func Key(op string, params ...string) string {
	var b strings.Builder
	b.WriteString(op)
	for i := 0; i+1 < len(params); i += 2 {
		b.WriteString("|")
		b.WriteString(params[i])
		b.WriteString("=")
		b.WriteString(strings.TrimSpace(params[i+1]))
	}
	return b.String()
}

func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *ResponseCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// InvalidateAll сбрасывает кэш целиком; вызывается синхронно на каждой записи
func (c *ResponseCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}

func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
