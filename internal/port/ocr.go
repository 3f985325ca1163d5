package port

import "context"

// OCRClient abstracts the remote text-recognition service. Both operations
// are critical-path: an error aborts the enclosing extraction.
type OCRClient interface {
	// ExtractImage runs OCR over a single image payload and returns the
	// recognized text.
	ExtractImage(ctx context.Context, data []byte) (string, error)
	// ExtractVideo runs OCR over a video payload and returns the
	// recognized text.
	ExtractVideo(ctx context.Context, data []byte) (string, error)
}
