package dbmanager

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/gopher-coins/internal/model"
)

type queryStartKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

// queryTracer logs coin ledger queries at DEBUG and failed ones at WARN.
type queryTracer struct {
	log *slog.Logger
	now func() time.Time
}

func newQueryTracer(log *slog.Logger) *queryTracer {
	return &queryTracer{log: log, now: time.Now}
}

func (t *queryTracer) TraceQueryStart(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryStartData,
) context.Context {
	t.log.LogAttrs(ctx,
		slog.LevelDebug,
		"running query",
		slog.String("query", data.SQL),
		slog.Any("args", data.Args),
	)
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: t.now(), sql: data.SQL})
}

func (t *queryTracer) TraceQueryEnd(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryEndData,
) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	attrs := []slog.Attr{
		slog.String("query", start.sql),
		slog.Duration("took", t.now().Sub(start.at)),
		slog.Int64("rows", data.CommandTag.RowsAffected()),
	}
	if data.Err != nil {
		t.log.LogAttrs(ctx, slog.LevelWarn, "query failed",
			append(attrs, slog.Any(model.KeyLoggerError, data.Err))...)
		return
	}
	t.log.LogAttrs(ctx, slog.LevelDebug, "query done", attrs...)
}
