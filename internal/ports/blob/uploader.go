package blob

import "context"

// UploadInput describe un archivo binario a subir.
// Folder y SubjectID arman la ruta final: {folder}/{subjectID}/{nombre generado}.
type UploadInput struct {
	Folder      string
	SubjectID   string
	Filename    string // nombre original; solo se conserva la extensión
	ContentType string
	Data        []byte
}

// Uploader sube un blob al almacenamiento de objetos y devuelve
// una URL pública resoluble.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}
