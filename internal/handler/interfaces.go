package handler

import (
	"context"
	"io"

	"requestprofiler/internal/profiler"
)

type ProfileStore interface {
	Snapshot() []profiler.Entry
	Clear()
	WriteCSV(w io.Writer) error
}

type ItemProcessor interface {
	Process(ctx context.Context, itemID int) (payload string, cached bool)
}
