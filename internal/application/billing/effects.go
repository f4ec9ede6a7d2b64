package billing

import (
	"context"

	"github.com/rs/zerolog"
)

// Revalidator marca como obsoleta la vista cacheada de una ruta.
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// Effect efecto posterior a una mutación exitosa (invalidar caché, navegar).
// Los efectos se ejecutan en orden y solo después de que la sentencia se aplicó.
type Effect interface {
	Apply(ctx context.Context, state *ActionState) error
	Name() string
}

type revalidateEffect struct {
	r    Revalidator
	path string
}

// Revalidate invalida la vista cacheada de path.
func Revalidate(r Revalidator, path string) Effect {
	return revalidateEffect{r: r, path: path}
}

func (e revalidateEffect) Apply(ctx context.Context, _ *ActionState) error {
	return e.r.Revalidate(ctx, e.path)
}

func (e revalidateEffect) Name() string { return "revalidate " + e.path }

type redirectEffect struct {
	path string
}

// Redirect indica al llamador que navegue a path. La navegación la ejecuta la
// capa HTTP leyendo ActionState.RedirectTo.
func Redirect(path string) Effect {
	return redirectEffect{path: path}
}

func (e redirectEffect) Apply(_ context.Context, state *ActionState) error {
	state.RedirectTo = e.path
	return nil
}

func (e redirectEffect) Name() string { return "redirect " + e.path }

// runEffects aplica los efectos en orden. Un efecto que falla se registra y no
// revierte la mutación ni impide los siguientes.
func runEffects(ctx context.Context, log zerolog.Logger, effects []Effect, state *ActionState) {
	for _, eff := range effects {
		if err := eff.Apply(ctx, state); err != nil {
			log.Warn().Err(err).Str("effect", eff.Name()).Msg("efecto post-mutación falló")
		}
	}
}
