package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

var _ repository.ItemWatcher = (*ItemWatcher)(nil)

// ItemWatcher implementa la suscripción a cambios de inventory_items sobre
// LISTEN/NOTIFY. Dedica una conexión del pool al LISTEN; las notificaciones
// llegan en el orden en que el servidor las emite dentro de la conexión.
type ItemWatcher struct {
	pool    *pgxpool.Pool
	channel string
}

// NewItemWatcher construye el watcher sobre el canal indicado.
func NewItemWatcher(pool *pgxpool.Pool, channel string) *ItemWatcher {
	return &ItemWatcher{pool: pool, channel: channel}
}

// Watch abre el LISTEN y entrega onChange por cada notificación. En error de
// transporte invoca onError y termina; la cancelación (vía la función
// devuelta o el ctx) termina en silencio. La función devuelta puede llamarse
// más de una vez sin efecto adicional.
func (w *ItemWatcher) Watch(ctx context.Context, onChange func(), onError func(error)) (func(), error) {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("adquirir conexión para LISTEN: %w", err)
	}
	listen := "LISTEN " + pgx.Identifier{w.channel}.Sanitize()
	if _, err := conn.Exec(ctx, listen); err != nil {
		conn.Release()
		return nil, fmt.Errorf("abrir LISTEN %s: %w", w.channel, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	go func() {
		defer conn.Release()
		for {
			if _, err := conn.Conn().WaitForNotification(watchCtx); err != nil {
				if watchCtx.Err() != nil {
					return // cancelado por el consumidor
				}
				onError(fmt.Errorf("esperar notificación: %w", err))
				return
			}
			onChange()
		}
	}()
	return cancel, nil
}
