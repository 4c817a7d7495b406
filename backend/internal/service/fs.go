package service

import "context"

type DocumentStorage interface {
	// ReadDocument returns the raw document of a collection.
	// A collection that was never written yields (nil, nil).
	ReadDocument(ctx context.Context, collection string) ([]byte, error)

	// WriteDocument replaces the whole document atomically.
	WriteDocument(ctx context.Context, collection string, data []byte) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

type ExportStorage interface {
	// SaveFile writes content under name, replacing any previous file.
	// It returns the name the file was stored under.
	SaveFile(ctx context.Context, name string, content []byte) (string, error)
}
