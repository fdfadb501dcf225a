package downloader

import "errors"

// ErrTranscode signals a failed transcode of an
// already fetched stream
var ErrTranscode = errors.New("transcode failed")

// Processor transforms a downloaded blob before it
// gets persisted
type Processor interface {
	Do(data []byte) ([]byte, error)
}
