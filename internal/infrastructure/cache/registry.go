// Package cache lleva la cuenta de qué vistas cacheadas están obsoletas.
//
// Cada ruta tiene un contador de generación. Revalidate lo incrementa y las
// claves de la caché HTTP incluyen la generación vigente, así que todas las
// páginas cacheadas de esa ruta (cualquier query string) dejan de usarse a la vez.
package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Registry generaciones por ruta. Seguro para uso concurrente.
type Registry struct {
	mu            sync.RWMutex
	generations   map[string]uint64
	invalidations map[string]uint64
}

// NewRegistry construye un registro vacío.
func NewRegistry() *Registry {
	return &Registry{
		generations:   make(map[string]uint64),
		invalidations: make(map[string]uint64),
	}
}

// Revalidate marca como obsoletas todas las entradas cacheadas de path.
func (r *Registry) Revalidate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := normalize(path)
	r.mu.Lock()
	r.generations[p]++
	r.invalidations[p]++
	r.mu.Unlock()
	return nil
}

// Generation devuelve la generación vigente de path.
func (r *Registry) Generation(path string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generations[normalize(path)]
}

// Invalidations cantidad de veces que se invalidó path.
func (r *Registry) Invalidations(path string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.invalidations[normalize(path)]
}

// KeyGenerator devuelve el generador de claves para el middleware cache de Fiber:
// "ruta#generación?query".
func (r *Registry) KeyGenerator() func(*fiber.Ctx) string {
	return func(c *fiber.Ctx) string {
		path := normalize(c.Path())
		var b strings.Builder
		b.WriteString(path)
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(r.Generation(path), 10))
		if qs := c.Request().URI().QueryString(); len(qs) > 0 {
			b.WriteByte('?')
			b.Write(qs)
		}
		return b.String()
	}
}

func normalize(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}
